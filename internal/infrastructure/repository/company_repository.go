package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

var _ domain.CompanyRepository = (*CompanyRepository)(nil)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindByName returns the oldest company of ownerID with exactly this name.
func (r *CompanyRepository) FindByName(ctx context.Context, ownerID, name string) (*domain.Company, error) {
	var row models.Company
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", ownerID, name).
		Order("created_at ASC").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company by name: %w", err)
	}

	company := toDomainCompany(row)
	return &company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	row := toCompanyModel(*c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err, "domain") {
			return domain.ErrCompanyDomainTaken
		}
		return fmt.Errorf("create company: %w", err)
	}

	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	return nil
}

func (r *CompanyRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Company{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return total, nil
}

func toCompanyModel(c domain.Company) models.Company {
	return models.Company{
		ID:           c.ID,
		UserID:       c.OwnerID,
		Name:         c.Name,
		Domain:       c.Domain,
		Industry:     c.Industry,
		Size:         c.Size,
		Location:     c.Location,
		Website:      c.Website,
		Description:  c.Description,
		Revenue:      c.Revenue,
		LinkedIn:     c.LinkedIn,
		FoundedYear:  c.FoundedYear,
		Phone:        c.Phone,
		DataSource:   c.DataSource,
		FieldSources: toJSONMap(c.FieldSources),
	}
}

func toDomainCompany(row models.Company) domain.Company {
	return domain.Company{
		ID:           row.ID,
		OwnerID:      row.UserID,
		Name:         row.Name,
		Domain:       row.Domain,
		Industry:     row.Industry,
		Size:         row.Size,
		Location:     row.Location,
		Website:      row.Website,
		Description:  row.Description,
		Revenue:      row.Revenue,
		LinkedIn:     row.LinkedIn,
		FoundedYear:  row.FoundedYear,
		Phone:        row.Phone,
		DataSource:   row.DataSource,
		FieldSources: fromJSONMap(row.FieldSources),
		CreatedAt:    row.CreatedAt,
	}
}
