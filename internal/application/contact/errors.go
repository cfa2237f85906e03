package contact

import "errors"

var (
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrNoFiles            = errors.New("no files to import")
	ErrInvalidImportRunID = errors.New("invalid import run id")
	ErrImportRunNotFound  = errors.New("import run not found")
	ErrGetImportRun       = errors.New("failed to get import run")
	ErrListImportRuns     = errors.New("failed to list import runs")
	ErrDetectDuplicates   = errors.New("failed to detect duplicates")
	ErrNoDuplicateIDs     = errors.New("no duplicate ids given")
	ErrInvalidContactID   = errors.New("invalid contact id")
	ErrRemoveDuplicates   = errors.New("failed to remove duplicates")
)
