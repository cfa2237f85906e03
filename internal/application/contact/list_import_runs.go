package contact

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

type ListImportRunsInput struct {
	OwnerID string
}

type ListImportRunsOutput struct {
	Runs []ImportRunOutput `json:"runs"`
}

type ListImportRuns interface {
	Execute(ctx context.Context, in ListImportRunsInput) (ListImportRunsOutput, error)
}

type importRunLister interface {
	List(ctx context.Context, ownerID string) ([]domain.ImportRun, error)
}

type listImportRuns struct {
	repo importRunLister
}

func NewListImportRuns(repo importRunLister) ListImportRuns {
	return &listImportRuns{repo: repo}
}

// Execute returns the owner's import runs, newest first.
func (uc *listImportRuns) Execute(ctx context.Context, in ListImportRunsInput) (ListImportRunsOutput, error) {
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return ListImportRunsOutput{}, ErrInvalidOwnerID
	}

	runs, err := uc.repo.List(ctx, ownerID)
	if err != nil {
		return ListImportRunsOutput{}, fmt.Errorf("%w: %v", ErrListImportRuns, err)
	}

	out := ListImportRunsOutput{Runs: make([]ImportRunOutput, 0, len(runs))}
	for _, run := range runs {
		out.Runs = append(out.Runs, toImportRunOutput(run))
	}
	return out, nil
}
