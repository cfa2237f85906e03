package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Company struct {
	ID           string            `gorm:"type:uuid;primaryKey"`
	UserID       string            `gorm:"size:64;not null;index:idx_companies_user_name,priority:1"`
	Name         string            `gorm:"size:255;not null;index:idx_companies_user_name,priority:2"`
	Domain       *string           `gorm:"size:255;uniqueIndex:idx_companies_domain"`
	Industry     string            `gorm:"size:255;not null"`
	Size         string            `gorm:"size:100;not null"`
	Location     string            `gorm:"size:255;not null"`
	Website      string            `gorm:"size:500;not null"`
	Description  string            `gorm:"type:text;not null"`
	Revenue      string            `gorm:"size:100;not null"`
	LinkedIn     string            `gorm:"column:linkedin;size:500;not null"`
	FoundedYear  *int              `gorm:"type:integer"`
	Phone        string            `gorm:"size:64;not null"`
	DataSource   string            `gorm:"size:50;not null"`
	FieldSources datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
