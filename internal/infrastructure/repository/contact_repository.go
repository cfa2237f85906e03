package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/db/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ domain.ContactRepository = (*ContactRepository)(nil)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// FindOne matches email exactly, phone by digits, and name plus company name exactly. Inactive
// contacts still match.
func (r *ContactRepository) FindOne(ctx context.Context, ownerID string, match domain.ContactMatch) (*domain.Contact, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Select("contacts.*").
		Where("contacts.user_id = ?", ownerID)

	if match.Email != "" {
		query = query.Where("contacts.email = ?", match.Email)
	}
	if match.PhoneDigits != "" {
		query = query.Where("contacts.phone_digits = ?", match.PhoneDigits)
	}
	if match.FirstName != "" {
		query = query.Where("contacts.first_name = ?", match.FirstName)
	}
	if match.LastName != "" {
		query = query.Where("contacts.last_name = ?", match.LastName)
	}
	if match.CompanyName != "" {
		query = query.
			Joins("JOIN companies ON companies.id = contacts.company_id").
			Where("companies.name = ?", match.CompanyName)
	}

	var row models.Contact
	err := query.Order("contacts.created_at ASC").Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}

	c := toDomainContact(row)
	return &c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	row := toContactModel(*c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	return nil
}

// Deactivate soft-deletes the active contacts of ownerID among ids.
func (r *ContactRepository) Deactivate(ctx context.Context, ownerID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("user_id = ? AND id IN ? AND is_active = ?", ownerID, ids, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("deactivate contacts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Count returns the number of active contacts of ownerID.
func (r *ContactRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("user_id = ? AND is_active = ?", ownerID, true).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

func toContactModel(c domain.Contact) models.Contact {
	var email *string
	if c.Email != "" {
		e := c.Email
		email = &e
	}

	return models.Contact{
		ID:           c.ID,
		UserID:       c.OwnerID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        email,
		Phone:        c.Phone,
		Title:        c.Title,
		Status:       string(c.Status),
		Notes:        c.Notes,
		CompanyID:    c.CompanyID,
		CustomFields: toJSONMap(c.CustomFields),
		FieldSources: toJSONMap(c.FieldSources),
		IsActive:     c.IsActive,
	}
}

func toDomainContact(row models.Contact) domain.Contact {
	c := domain.Contact{
		ID:           row.ID,
		OwnerID:      row.UserID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Phone:        row.Phone,
		Title:        row.Title,
		Status:       domain.Status(row.Status),
		Notes:        row.Notes,
		CompanyID:    row.CompanyID,
		CustomFields: fromJSONMap(row.CustomFields),
		FieldSources: fromJSONMap(row.FieldSources),
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
	}
	if row.Email != nil {
		c.Email = *row.Email
	}
	return c
}

func toJSONMap(values map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

func fromJSONMap(values datatypes.JSONMap) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out
}
