package contact

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

type DetectDuplicatesInput struct {
	OwnerID string
}

type DetectDuplicatesOutput struct {
	TotalDuplicateGroups int                     `json:"totalDuplicateGroups"`
	TotalDuplicates      int                     `json:"totalDuplicates"`
	Groups               []domain.DuplicateGroup `json:"groups"`
}

type DetectDuplicates interface {
	Execute(ctx context.Context, in DetectDuplicatesInput) (DetectDuplicatesOutput, error)
}

type detectDuplicates struct {
	scanner domain.ContactScanner
}

func NewDetectDuplicates(scanner domain.ContactScanner) DetectDuplicates {
	return &detectDuplicates{scanner: scanner}
}

func (uc *detectDuplicates) Execute(ctx context.Context, in DetectDuplicatesInput) (DetectDuplicatesOutput, error) {
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return DetectDuplicatesOutput{}, ErrInvalidOwnerID
	}

	snapshots, err := uc.scanner.ListActiveSnapshots(ctx, ownerID)
	if err != nil {
		return DetectDuplicatesOutput{}, fmt.Errorf("%w: %v", ErrDetectDuplicates, err)
	}

	groups := domain.GroupDuplicates(snapshots)
	return DetectDuplicatesOutput{
		TotalDuplicateGroups: len(groups),
		TotalDuplicates:      domain.CountDuplicates(groups),
		Groups:               groups,
	}, nil
}
