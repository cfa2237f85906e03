package contact

import "time"

type ImportRunStatus string

const (
	ImportRunProcessing ImportRunStatus = "PROCESSING"
	ImportRunCompleted  ImportRunStatus = "COMPLETED"
	ImportRunFailed     ImportRunStatus = "FAILED"
)

// ImportRun is the history entry written for one import batch.
type ImportRun struct {
	ID          string
	OwnerID     string
	FileNames   []string
	Status      ImportRunStatus
	Summary     ImportSummary
	StartedAt   time.Time
	CompletedAt *time.Time
}

type ImportSummary struct {
	ProcessedCount  int64
	ContactsCount   int64
	CompaniesCount  int64
	DuplicatesCount int64
	ErrorsCount     int64
	Errors          []string
}

// FinalStatus reports FAILED when no record could be read from any file.
func (s ImportSummary) FinalStatus() ImportRunStatus {
	if s.ProcessedCount > 0 {
		return ImportRunCompleted
	}
	return ImportRunFailed
}
