package contact

import (
	"net/url"
	"strings"
	"time"
)

// socialDomains are hosts that identify a profile page, never a company's own site.
var socialDomains = []string{
	"linkedin.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
}

type CompanyDraft struct {
	Name         string
	Industry     string
	Size         string
	Location     string
	Website      string
	Description  string
	Revenue      string
	LinkedIn     string
	FoundedYear  *int
	Phone        string
	FieldSources map[string]string
}

func NewCompanyDraft() CompanyDraft {
	return CompanyDraft{FieldSources: map[string]string{}}
}

type Company struct {
	ID           string
	OwnerID      string
	Name         string
	Domain       *string
	Industry     string
	Size         string
	Location     string
	Website      string
	Description  string
	Revenue      string
	LinkedIn     string
	FoundedYear  *int
	Phone        string
	DataSource   string
	FieldSources map[string]string
	CreatedAt    time.Time
}

// NewCompany builds a company from a draft. The domain is derived from the website.
func NewCompany(ownerID string, draft CompanyDraft) Company {
	company := Company{
		OwnerID:      ownerID,
		Name:         draft.Name,
		Industry:     draft.Industry,
		Size:         draft.Size,
		Location:     draft.Location,
		Website:      draft.Website,
		Description:  draft.Description,
		Revenue:      draft.Revenue,
		LinkedIn:     draft.LinkedIn,
		FoundedYear:  draft.FoundedYear,
		Phone:        draft.Phone,
		DataSource:   SourceCSVImport,
		FieldSources: draft.FieldSources,
	}
	if domain, ok := DeriveDomain(draft.Website); ok {
		company.Domain = &domain
	}
	return company
}

// DeriveDomain returns the lower-cased hostname of website. Values without a scheme are read as
// https URLs. Social platform hosts and unparseable values yield no domain.
func DeriveDomain(website string) (string, bool) {
	website = strings.TrimSpace(website)
	if website == "" {
		return "", false
	}

	lower := strings.ToLower(website)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		website = "https://" + website
	}

	parsed, err := url.Parse(website)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", false
	}

	for _, social := range socialDomains {
		if host == social || strings.HasSuffix(host, "."+social) {
			return "", false
		}
	}

	return host, true
}
