package contact

import (
	"strings"
	"time"
)

// SourceCSVImport is the provenance and data source tag written by file imports.
const SourceCSVImport = "csv_import"

type Status string

const (
	StatusLead     Status = "LEAD"
	StatusProspect Status = "PROSPECT"
	StatusCustomer Status = "CUSTOMER"
	StatusPartner  Status = "PARTNER"
)

// ParseStatus upper-cases raw and reports whether it names a known status.
func ParseStatus(raw string) (Status, bool) {
	switch s := Status(strings.ToUpper(strings.TrimSpace(raw))); s {
	case StatusLead, StatusProspect, StatusCustomer, StatusPartner:
		return s, true
	default:
		return "", false
	}
}

// ContactDraft is a contact assembled from one imported record, before persistence.
type ContactDraft struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Title        string
	Status       Status
	Notes        string
	CustomFields map[string]string
	FieldSources map[string]string
}

func NewContactDraft() ContactDraft {
	return ContactDraft{
		CustomFields: map[string]string{},
		FieldSources: map[string]string{},
	}
}

// FullName joins first and last name with a single space.
func (d ContactDraft) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

type Contact struct {
	ID           string
	OwnerID      string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Title        string
	Status       Status
	Notes        string
	CompanyID    *string
	CustomFields map[string]string
	FieldSources map[string]string
	IsActive     bool
	CreatedAt    time.Time
}

// NewContact builds an active contact owned by ownerID from a draft, applying the LEAD default.
func NewContact(ownerID string, draft ContactDraft, companyID *string) Contact {
	status := draft.Status
	if status == "" {
		status = StatusLead
	}

	return Contact{
		OwnerID:      ownerID,
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		Email:        draft.Email,
		Phone:        draft.Phone,
		Title:        draft.Title,
		Status:       status,
		Notes:        draft.Notes,
		CompanyID:    companyID,
		CustomFields: draft.CustomFields,
		FieldSources: draft.FieldSources,
		IsActive:     true,
	}
}

// ContactMatch is an owner-scoped lookup predicate. Only non-empty fields constrain the match.
type ContactMatch struct {
	Email       string
	PhoneDigits string
	FirstName   string
	LastName    string
	CompanyName string
}

// PhoneDigits strips everything but ASCII digits.
func PhoneDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
