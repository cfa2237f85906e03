// Package schema infers what each column of an imported file means and normalizes records into
// contact and company drafts.
package schema

import (
	"regexp"
	"strings"
)

type Field string

const (
	FieldFirstName          Field = "firstName"
	FieldLastName           Field = "lastName"
	FieldFullName           Field = "fullName"
	FieldEmail              Field = "email"
	FieldPhone              Field = "phone"
	FieldTitle              Field = "title"
	FieldCompany            Field = "company"
	FieldCompanyIndustry    Field = "companyIndustry"
	FieldCompanySize        Field = "companySize"
	FieldCompanyLocation    Field = "companyLocation"
	FieldCompanyWebsite     Field = "companyWebsite"
	FieldCompanyDescription Field = "companyDescription"
	FieldCompanyRevenue     Field = "companyRevenue"
	FieldCompanyLinkedIn    Field = "companyLinkedIn"
	FieldCompanyFoundedYear Field = "companyFoundedYear"
	FieldCompanyPhone       Field = "companyPhone"
	FieldStatus             Field = "status"
	FieldNotes              Field = "notes"
	FieldCustom             Field = "custom"
)

// Tag is the canonical meaning of one column. Custom tags keep the original header.
type Tag struct {
	Field  Field
	Header string
}

func (t Tag) IsCustom() bool {
	return t.Field == FieldCustom
}

// Column pairs an original header with its tag.
type Column struct {
	Header string
	Tag    Tag
}

// FieldMapping holds one column per distinct header, in header order.
type FieldMapping struct {
	Columns []Column
}

// TagFor returns the tag of header.
func (m FieldMapping) TagFor(header string) (Tag, bool) {
	for _, col := range m.Columns {
		if col.Header == header {
			return col.Tag, true
		}
	}
	return Tag{}, false
}

type rule struct {
	field   Field
	pattern *regexp.Regexp
}

// rules is evaluated top to bottom against normalized headers; the first match wins.
var rules = []rule{
	// name
	{FieldFirstName, regexp.MustCompile(`^(first.*name|fname|givenname|first|forename)$`)},
	{FieldLastName, regexp.MustCompile(`^(last.*name|lname|surname|familyname|last)$`)},
	{FieldFullName, regexp.MustCompile(`^(fullname|name|contactname|displayname)$`)},

	// contact info
	{FieldEmail, regexp.MustCompile(`^(email|mail|emailaddress|emailid|e?mailaddr|workemail|personalemail|primaryemail|email\d)$`)},
	{FieldPhone, regexp.MustCompile(`^(phone|phonenumber|phoneno|mobile|mobilephone|mobilenumber|cell|cellphone|tel|telephone|workphone|homephone|directphone|phone\d)$`)},
	{FieldTitle, regexp.MustCompile(`^(title|jobtitle|position|designation)$`)},

	// company attributes
	{FieldCompany, regexp.MustCompile(`^(company|companyname|organization|organisation|org|orgname|employer|business|account|accountname)$`)},
	{FieldCompanyIndustry, regexp.MustCompile(`^(industry|companyindustry|sector|vertical)$`)},
	{FieldCompanySize, regexp.MustCompile(`^(companysize|employees|employeecount|numberofemployees|headcount)$`)},
	{FieldCompanyLocation, regexp.MustCompile(`^(companylocation|companycity|companyaddress|companycountry|headquarters|hq)$`)},
	{FieldCompanyWebsite, regexp.MustCompile(`^(website|companywebsite|webaddress|url|domain|companydomain|companyurl|site|web)$`)},
	{FieldCompanyDescription, regexp.MustCompile(`^(companydescription|aboutcompany|companyinfo|about)$`)},
	{FieldCompanyRevenue, regexp.MustCompile(`^(revenue|companyrevenue|annualrevenue|sales)$`)},
	{FieldCompanyLinkedIn, regexp.MustCompile(`^(linkedin|companylinkedin|linkedinurl|linkedinprofile)$`)},
	{FieldCompanyFoundedYear, regexp.MustCompile(`^(founded|foundedyear|yearfounded|companyfounded|established)$`)},
	{FieldCompanyPhone, regexp.MustCompile(`^(companyphone|mainphone|officenumber|officephone|businessphone)$`)},

	// status
	{FieldStatus, regexp.MustCompile(`^(status|stage|leadstatus|contactstatus|lifecyclestage)$`)},

	// notes
	{FieldNotes, regexp.MustCompile(`^(notes?|comments?|description|remarks?|memo)$`)},
}

var headerNoise = strings.NewReplacer(" ", "", "_", "", "-", "")

// NormalizeHeader lower-cases header and strips spaces, underscores and hyphens.
func NormalizeHeader(header string) string {
	return headerNoise.Replace(strings.ToLower(strings.TrimSpace(header)))
}

// InferMapping tags every distinct header exactly once. It depends only on the headers.
func InferMapping(headers []string) FieldMapping {
	mapping := FieldMapping{Columns: make([]Column, 0, len(headers))}
	seen := make(map[string]bool, len(headers))

	for _, header := range headers {
		if seen[header] {
			continue
		}
		seen[header] = true
		mapping.Columns = append(mapping.Columns, Column{Header: header, Tag: tagHeader(header)})
	}

	return mapping
}

func tagHeader(header string) Tag {
	normalized := NormalizeHeader(header)
	for _, r := range rules {
		if r.pattern.MatchString(normalized) {
			return Tag{Field: r.field}
		}
	}
	return Tag{Field: FieldCustom, Header: header}
}
