package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
	"github.com/mohammadpnp/contact-import/internal/infrastructure/db/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const listImportRunsLimit = 50

var _ domain.ImportRunRepository = (*ImportRunRepository)(nil)

type ImportRunRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db, now: time.Now}
}

func (r *ImportRunRepository) Start(ctx context.Context, ownerID string, fileNames []string) (string, error) {
	run := models.ImportRun{
		UserID:    ownerID,
		FileNames: datatypes.NewJSONSlice(fileNames),
		Status:    string(domain.ImportRunProcessing),
		Errors:    datatypes.NewJSONSlice([]string{}),
		StartedAt: r.now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("create import run: %w", err)
	}

	return run.ID, nil
}

func (r *ImportRunRepository) Finish(ctx context.Context, runID string, summary domain.ImportSummary) error {
	errs := summary.Errors
	if errs == nil {
		errs = []string{}
	}

	result := r.db.WithContext(ctx).
		Model(&models.ImportRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":           string(summary.FinalStatus()),
			"processed_count":  summary.ProcessedCount,
			"contacts_count":   summary.ContactsCount,
			"companies_count":  summary.CompaniesCount,
			"duplicates_count": summary.DuplicatesCount,
			"errors_count":     summary.ErrorsCount,
			"errors":           datatypes.NewJSONSlice(errs),
			"completed_at":     r.now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("finish import run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrImportRunNotFound
	}
	return nil
}

func (r *ImportRunRepository) GetByID(ctx context.Context, ownerID, runID string) (*domain.ImportRun, error) {
	var row models.ImportRun
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", runID, ownerID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImportRunNotFound
		}
		return nil, fmt.Errorf("get import run: %w", err)
	}

	run := toDomainImportRun(row)
	return &run, nil
}

// List returns the most recent runs of ownerID, newest first.
func (r *ImportRunRepository) List(ctx context.Context, ownerID string) ([]domain.ImportRun, error) {
	var rows []models.ImportRun
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("started_at DESC").
		Limit(listImportRunsLimit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}

	runs := make([]domain.ImportRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, toDomainImportRun(row))
	}
	return runs, nil
}

func toDomainImportRun(row models.ImportRun) domain.ImportRun {
	return domain.ImportRun{
		ID:        row.ID,
		OwnerID:   row.UserID,
		FileNames: []string(row.FileNames),
		Status:    domain.ImportRunStatus(row.Status),
		Summary: domain.ImportSummary{
			ProcessedCount:  row.ProcessedCount,
			ContactsCount:   row.ContactsCount,
			CompaniesCount:  row.CompaniesCount,
			DuplicatesCount: row.DuplicatesCount,
			ErrorsCount:     row.ErrorsCount,
			Errors:          []string(row.Errors),
		},
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
}
