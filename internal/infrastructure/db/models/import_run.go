package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ImportRun struct {
	ID              string                      `gorm:"type:uuid;primaryKey"`
	UserID          string                      `gorm:"size:64;not null;index"`
	FileNames       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Status          string                      `gorm:"size:20;not null"`
	ProcessedCount  int64                       `gorm:"not null"`
	ContactsCount   int64                       `gorm:"not null"`
	CompaniesCount  int64                       `gorm:"not null"`
	DuplicatesCount int64                       `gorm:"not null"`
	ErrorsCount     int64                       `gorm:"not null"`
	Errors          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	StartedAt       time.Time                   `gorm:"not null;index"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ImportRun) TableName() string {
	return "import_runs"
}

func (r *ImportRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
