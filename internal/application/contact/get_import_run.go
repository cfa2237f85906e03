package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

type GetImportRunInput struct {
	OwnerID string
	ID      string
}

type ImportRunOutput struct {
	ID              string     `json:"id"`
	FileNames       []string   `json:"fileNames"`
	Status          string     `json:"status"`
	ProcessedCount  int64      `json:"processedCount"`
	ContactsCount   int64      `json:"contactsCount"`
	CompaniesCount  int64      `json:"companiesCount"`
	DuplicatesCount int64      `json:"duplicatesCount"`
	ErrorsCount     int64      `json:"errorsCount"`
	Errors          []string   `json:"errors,omitempty"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

type GetImportRun interface {
	Execute(ctx context.Context, in GetImportRunInput) (ImportRunOutput, error)
}

type importRunReader interface {
	GetByID(ctx context.Context, ownerID, runID string) (*domain.ImportRun, error)
}

type getImportRun struct {
	repo importRunReader
}

func NewGetImportRun(repo importRunReader) GetImportRun {
	return &getImportRun{repo: repo}
}

func (uc *getImportRun) Execute(ctx context.Context, in GetImportRunInput) (ImportRunOutput, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return ImportRunOutput{}, ErrInvalidOwnerID
	}
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return ImportRunOutput{}, ErrInvalidImportRunID
	}

	run, err := uc.repo.GetByID(ctx, in.OwnerID, id.String())
	if err != nil {
		if errors.Is(err, domain.ErrImportRunNotFound) {
			return ImportRunOutput{}, ErrImportRunNotFound
		}
		return ImportRunOutput{}, fmt.Errorf("%w: %v", ErrGetImportRun, err)
	}

	return toImportRunOutput(*run), nil
}

func toImportRunOutput(run domain.ImportRun) ImportRunOutput {
	fileNames := run.FileNames
	if fileNames == nil {
		fileNames = []string{}
	}
	return ImportRunOutput{
		ID:              run.ID,
		FileNames:       fileNames,
		Status:          string(run.Status),
		ProcessedCount:  run.Summary.ProcessedCount,
		ContactsCount:   run.Summary.ContactsCount,
		CompaniesCount:  run.Summary.CompaniesCount,
		DuplicatesCount: run.Summary.DuplicatesCount,
		ErrorsCount:     run.Summary.ErrorsCount,
		Errors:          run.Summary.Errors,
		StartedAt:       run.StartedAt,
		CompletedAt:     run.CompletedAt,
	}
}
