package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
	"github.com/mohammadpnp/contact-import/internal/ingest/parser"
	"github.com/mohammadpnp/contact-import/internal/ingest/schema"
	"go.uber.org/zap"
)

// ImportFile is one uploaded file.
type ImportFile struct {
	Name string
	Data []byte
}

type ImportContactsInput struct {
	OwnerID string
	Files   []ImportFile
}

type ImportedContact struct {
	ID           string            `json:"id"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Title        string            `json:"title,omitempty"`
	Status       domain.Status     `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	CompanyID    *string           `json:"companyId"`
	CustomFields map[string]string `json:"customFields"`
	FieldSources map[string]string `json:"fieldSources"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ImportResult aggregates every file of a batch.
type ImportResult struct {
	ImportRunID       string            `json:"importRunId,omitempty"`
	TotalProcessed    int               `json:"totalProcessed"`
	ContactsImported  int               `json:"contactsImported"`
	CompaniesImported int               `json:"companiesImported"`
	Duplicates        int               `json:"duplicates"`
	DuplicatesList    []string          `json:"duplicatesList"`
	Errors            []string          `json:"errors,omitempty"`
	Contacts          []ImportedContact `json:"contacts"`
}

type ImportContacts interface {
	Execute(ctx context.Context, in ImportContactsInput) (ImportResult, error)
}

type importContacts struct {
	contacts   domain.ContactRepository
	companies  domain.CompanyRepository
	runs       domain.ImportRunRepository
	duplicates *DuplicateChecker
	resolver   *CompanyResolver
	logger     *zap.Logger
}

func NewImportContacts(contacts domain.ContactRepository, companies domain.CompanyRepository, runs domain.ImportRunRepository, logger *zap.Logger) ImportContacts {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &importContacts{
		contacts:   contacts,
		companies:  companies,
		runs:       runs,
		duplicates: NewDuplicateChecker(contacts),
		resolver:   NewCompanyResolver(companies),
		logger:     logger,
	}
}

// Execute imports every file in order, one record at a time. Failures are collected into the
// result; only invalid input returns an error.
func (uc *importContacts) Execute(ctx context.Context, in ImportContactsInput) (ImportResult, error) {
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return ImportResult{}, ErrInvalidOwnerID
	}
	if len(in.Files) == 0 {
		return ImportResult{}, ErrNoFiles
	}

	result := ImportResult{
		DuplicatesList: make([]string, 0),
		Contacts:       make([]ImportedContact, 0),
	}

	fileNames := make([]string, 0, len(in.Files))
	for _, f := range in.Files {
		fileNames = append(fileNames, f.Name)
	}
	runID, err := uc.runs.Start(ctx, ownerID, fileNames)
	if err != nil {
		uc.logger.Warn("start import run failed", zap.String("owner_id", ownerID), zap.Error(err))
	}
	result.ImportRunID = runID

	for _, file := range in.Files {
		uc.importFile(ctx, ownerID, file, &result)
	}

	uc.finish(ctx, ownerID, runID, &result)
	return result, nil
}

func (uc *importContacts) importFile(ctx context.Context, ownerID string, file ImportFile, result *ImportResult) {
	records, format, err := parser.Parse(file.Name, file.Data)
	if err != nil {
		uc.logger.Info("import file unreadable", zap.String("file", file.Name), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("File %s: %v", file.Name, err))
		return
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("File %s: No valid records found", file.Name))
		return
	}

	mapping := schema.InferMapping(records[0].Headers)
	uc.logger.Info("importing file",
		zap.String("file", file.Name),
		zap.String("kind", string(format.Kind)),
		zap.Int("records", len(records)),
	)

	for _, record := range records {
		result.TotalProcessed++

		switch outcome := schema.Normalize(record, mapping).(type) {
		case schema.SkippedRecord:
			continue
		case schema.CompanyOnlyRecord:
			if _, err := uc.resolver.Resolve(ctx, ownerID, outcome.Company); err != nil {
				uc.logger.Warn("resolve company failed", zap.String("file", file.Name), zap.Error(err))
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to import company %s (from %s): %v", outcome.Company.Name, file.Name, err))
				continue
			}
			result.CompaniesImported++
		case schema.ContactRecord:
			uc.importContact(ctx, ownerID, file.Name, outcome, result)
		}
	}
}

func (uc *importContacts) importContact(ctx context.Context, ownerID, fileName string, rec schema.ContactRecord, result *ImportResult) {
	draft := rec.Contact

	if err := domain.ValidateContactDraft(draft); err != nil {
		var formatErr *domain.FormatError
		if !errors.As(err, &formatErr) {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid contact %s: %v", draft.FullName(), err))
			return
		}
		uc.logger.Debug("contact rejected", zap.String("file", fileName), zap.String("field", formatErr.Field))
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid %s for %s: %s", formatErr.Field, draft.FullName(), formatErr.Reason))
		return
	}

	hit, err := uc.duplicates.Check(ctx, ownerID, draft, rec.Company)
	if err != nil {
		uc.recordFailure(fileName, draft, err, result)
		return
	}
	if hit != nil {
		identifier := draft.Email
		if identifier == "" {
			identifier = draft.FullName()
		}
		uc.logger.Debug("duplicate contact skipped",
			zap.String("file", fileName),
			zap.String("strategy", hit.Strategy),
			zap.String("existing_id", hit.Existing.ID),
		)
		result.Duplicates++
		result.DuplicatesList = append(result.DuplicatesList, fmt.Sprintf("%s (from %s)", identifier, fileName))
		return
	}

	companyID, err := uc.resolver.Resolve(ctx, ownerID, rec.Company)
	if err != nil {
		uc.recordFailure(fileName, draft, err, result)
		return
	}

	created := domain.NewContact(ownerID, draft, companyID)
	if err := uc.contacts.Create(ctx, &created); err != nil {
		uc.recordFailure(fileName, draft, fmt.Errorf("create contact: %w", err), result)
		return
	}

	result.ContactsImported++
	result.Contacts = append(result.Contacts, toImportedContact(created))
}

func (uc *importContacts) recordFailure(fileName string, draft domain.ContactDraft, err error, result *ImportResult) {
	uc.logger.Warn("import contact failed", zap.String("file", fileName), zap.Error(err))
	result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %s (from %s): %v", draft.FullName(), fileName, err))
}

func (uc *importContacts) finish(ctx context.Context, ownerID, runID string, result *ImportResult) {
	fields := []zap.Field{
		zap.String("owner_id", ownerID),
		zap.Int("processed", result.TotalProcessed),
		zap.Int("contacts_imported", result.ContactsImported),
		zap.Int("companies_imported", result.CompaniesImported),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("errors", len(result.Errors)),
	}
	if total, err := uc.contacts.Count(ctx, ownerID); err == nil {
		fields = append(fields, zap.Int64("owner_contacts", total))
	}
	if total, err := uc.companies.Count(ctx, ownerID); err == nil {
		fields = append(fields, zap.Int64("owner_companies", total))
	}
	uc.logger.Info("import finished", fields...)

	if runID == "" {
		return
	}

	summary := domain.ImportSummary{
		ProcessedCount:  int64(result.TotalProcessed),
		ContactsCount:   int64(result.ContactsImported),
		CompaniesCount:  int64(result.CompaniesImported),
		DuplicatesCount: int64(result.Duplicates),
		ErrorsCount:     int64(len(result.Errors)),
		Errors:          result.Errors,
	}
	if err := uc.runs.Finish(ctx, runID, summary); err != nil {
		uc.logger.Warn("finish import run failed", zap.String("run_id", runID), zap.Error(err))
	}
}

func toImportedContact(c domain.Contact) ImportedContact {
	return ImportedContact{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		Title:        c.Title,
		Status:       c.Status,
		Notes:        c.Notes,
		CompanyID:    c.CompanyID,
		CustomFields: c.CustomFields,
		FieldSources: c.FieldSources,
		CreatedAt:    c.CreatedAt,
	}
}
