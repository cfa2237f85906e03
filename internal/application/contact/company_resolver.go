package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

type companyStore interface {
	FindByName(ctx context.Context, ownerID, name string) (*domain.Company, error)
	Create(ctx context.Context, c *domain.Company) error
}

// CompanyResolver finds a company by exact name or creates it. Existing companies are never
// modified.
type CompanyResolver struct {
	companies companyStore
}

func NewCompanyResolver(companies companyStore) *CompanyResolver {
	return &CompanyResolver{companies: companies}
}

// Resolve returns the id of the company named by draft, or nil when the draft has no name.
func (r *CompanyResolver) Resolve(ctx context.Context, ownerID string, draft domain.CompanyDraft) (*string, error) {
	if draft.Name == "" {
		return nil, nil
	}

	existing, err := r.companies.FindByName(ctx, ownerID, draft.Name)
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, fmt.Errorf("find company %q: %w", draft.Name, err)
	}

	company := domain.NewCompany(ownerID, draft)
	err = r.companies.Create(ctx, &company)
	if errors.Is(err, domain.ErrCompanyDomainTaken) {
		company.Domain = nil
		err = r.companies.Create(ctx, &company)
	}
	if err != nil {
		return nil, fmt.Errorf("create company %q: %w", draft.Name, err)
	}

	return &company.ID, nil
}
