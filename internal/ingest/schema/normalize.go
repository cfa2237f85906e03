package schema

import (
	"strconv"
	"strings"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
	"github.com/mohammadpnp/contact-import/internal/ingest/parser"
)

// Outcome is the result of normalizing one record: ContactRecord, CompanyOnlyRecord or
// SkippedRecord.
type Outcome interface {
	outcome()
}

// ContactRecord carries a contact with a first name. Company.Name may be empty.
type ContactRecord struct {
	Contact domain.ContactDraft
	Company domain.CompanyDraft
}

// CompanyOnlyRecord names a company but no contact.
type CompanyOnlyRecord struct {
	Company domain.CompanyDraft
}

// SkippedRecord has neither a contact name nor a company name.
type SkippedRecord struct{}

func (ContactRecord) outcome()     {}
func (CompanyOnlyRecord) outcome() {}
func (SkippedRecord) outcome()     {}

// Normalize builds drafts from record using mapping. Blank values never set a field.
func Normalize(record parser.RawRecord, mapping FieldMapping) Outcome {
	contact := domain.NewContactDraft()
	company := domain.NewCompanyDraft()

	for _, col := range mapping.Columns {
		value := strings.TrimSpace(record.Get(col.Header))
		if value == "" {
			continue
		}
		apply(col.Tag, value, &contact, &company)
	}

	switch {
	case contact.FirstName != "":
		return ContactRecord{Contact: contact, Company: company}
	case company.Name != "":
		return CompanyOnlyRecord{Company: company}
	default:
		return SkippedRecord{}
	}
}

func apply(tag Tag, value string, contact *domain.ContactDraft, company *domain.CompanyDraft) {
	switch tag.Field {
	case FieldCustom:
		contact.CustomFields[tag.Header] = value
	case FieldFullName:
		parts := strings.Fields(value)
		if len(parts) > 0 {
			contact.FirstName = parts[0]
			contact.LastName = strings.Join(parts[1:], " ")
		}
	case FieldStatus:
		if status, ok := domain.ParseStatus(value); ok {
			contact.Status = status
		}
	case FieldFirstName:
		setContactField(contact, tag.Field, &contact.FirstName, value)
	case FieldLastName:
		setContactField(contact, tag.Field, &contact.LastName, value)
	case FieldEmail:
		setContactField(contact, tag.Field, &contact.Email, value)
	case FieldPhone:
		setContactField(contact, tag.Field, &contact.Phone, value)
	case FieldTitle:
		setContactField(contact, tag.Field, &contact.Title, value)
	case FieldNotes:
		setContactField(contact, tag.Field, &contact.Notes, value)
	default:
		applyCompany(tag.Field, value, company)
	}
}

func setContactField(contact *domain.ContactDraft, field Field, target *string, value string) {
	*target = value
	contact.FieldSources[string(field)] = domain.SourceCSVImport
}

var companySources = map[Field]string{
	FieldCompany:            "name",
	FieldCompanyIndustry:    "industry",
	FieldCompanySize:        "size",
	FieldCompanyLocation:    "location",
	FieldCompanyWebsite:     "website",
	FieldCompanyDescription: "description",
	FieldCompanyRevenue:     "revenue",
	FieldCompanyLinkedIn:    "linkedin",
	FieldCompanyFoundedYear: "foundedYear",
	FieldCompanyPhone:       "phone",
}

func applyCompany(field Field, value string, company *domain.CompanyDraft) {
	switch field {
	case FieldCompany:
		company.Name = value
	case FieldCompanyIndustry:
		company.Industry = value
	case FieldCompanySize:
		company.Size = value
	case FieldCompanyLocation:
		company.Location = value
	case FieldCompanyWebsite:
		company.Website = value
	case FieldCompanyDescription:
		company.Description = value
	case FieldCompanyRevenue:
		company.Revenue = value
	case FieldCompanyLinkedIn:
		company.LinkedIn = value
	case FieldCompanyFoundedYear:
		year, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		company.FoundedYear = &year
	case FieldCompanyPhone:
		company.Phone = value
	default:
		return
	}
	company.FieldSources[companySources[field]] = domain.SourceCSVImport
}
