package models

import (
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Contact struct {
	ID           string            `gorm:"type:uuid;primaryKey"`
	UserID       string            `gorm:"size:64;not null;uniqueIndex:idx_contacts_user_email,priority:1;index:idx_contacts_user_created,priority:1"`
	FirstName    string            `gorm:"size:255;not null"`
	LastName     string            `gorm:"size:255;not null"`
	Email        *string           `gorm:"size:320;uniqueIndex:idx_contacts_user_email,priority:2"`
	Phone        string            `gorm:"size:64;not null"`
	PhoneDigits  string            `gorm:"size:32;not null;index"`
	Title        string            `gorm:"size:255;not null"`
	Status       string            `gorm:"size:20;not null"`
	Notes        string            `gorm:"type:text;not null"`
	CompanyID    *string           `gorm:"type:uuid;index"`
	Company      *Company          `gorm:"foreignKey:CompanyID"`
	CustomFields datatypes.JSONMap `gorm:"type:jsonb"`
	FieldSources datatypes.JSONMap `gorm:"type:jsonb"`
	IsActive     bool              `gorm:"not null"`
	CreatedAt    time.Time         `gorm:"index:idx_contacts_user_created,priority:2"`
	UpdatedAt    time.Time
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave keeps the digits-only phone column in sync for format-insensitive lookups.
func (c *Contact) BeforeSave(tx *gorm.DB) error {
	c.PhoneDigits = domain.PhoneDigits(c.Phone)
	return nil
}
