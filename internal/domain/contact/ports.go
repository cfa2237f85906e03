package contact

import "context"

type ContactRepository interface {
	// FindOne returns the first contact of ownerID satisfying match, or ErrContactNotFound.
	FindOne(ctx context.Context, ownerID string, match ContactMatch) (*Contact, error)
	Create(ctx context.Context, c *Contact) error
	Deactivate(ctx context.Context, ownerID string, ids []string) (int64, error)
	Count(ctx context.Context, ownerID string) (int64, error)
}

type CompanyRepository interface {
	// FindByName matches name exactly, or returns ErrCompanyNotFound.
	FindByName(ctx context.Context, ownerID, name string) (*Company, error)
	// Create returns ErrCompanyDomainTaken when another company already claims the domain.
	Create(ctx context.Context, c *Company) error
	Count(ctx context.Context, ownerID string) (int64, error)
}

// ContactScanner lists the active contacts of an owner, oldest first, for duplicate review.
type ContactScanner interface {
	ListActiveSnapshots(ctx context.Context, ownerID string) ([]ContactSnapshot, error)
}

type ImportRunRepository interface {
	Start(ctx context.Context, ownerID string, fileNames []string) (string, error)
	Finish(ctx context.Context, runID string, summary ImportSummary) error
	GetByID(ctx context.Context, ownerID, runID string) (*ImportRun, error)
	List(ctx context.Context, ownerID string) ([]ImportRun, error)
}
