package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type RemoveDuplicatesInput struct {
	OwnerID      string
	DuplicateIDs []string
}

type RemoveDuplicatesOutput struct {
	RemovedCount int64 `json:"removedCount"`
}

type RemoveDuplicates interface {
	Execute(ctx context.Context, in RemoveDuplicatesInput) (RemoveDuplicatesOutput, error)
}

type contactDeactivator interface {
	Deactivate(ctx context.Context, ownerID string, ids []string) (int64, error)
}

type removeDuplicates struct {
	contacts contactDeactivator
}

func NewRemoveDuplicates(contacts contactDeactivator) RemoveDuplicates {
	return &removeDuplicates{contacts: contacts}
}

// Execute soft-deletes the given contacts of the owner. Ids owned by someone else are ignored.
func (uc *removeDuplicates) Execute(ctx context.Context, in RemoveDuplicatesInput) (RemoveDuplicatesOutput, error) {
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return RemoveDuplicatesOutput{}, ErrInvalidOwnerID
	}
	if len(in.DuplicateIDs) == 0 {
		return RemoveDuplicatesOutput{}, ErrNoDuplicateIDs
	}

	ids := make([]string, 0, len(in.DuplicateIDs))
	seen := make(map[string]bool, len(in.DuplicateIDs))
	for _, id := range in.DuplicateIDs {
		if _, err := uuid.Parse(id); err != nil {
			return RemoveDuplicatesOutput{}, fmt.Errorf("%w: %s", ErrInvalidContactID, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	removed, err := uc.contacts.Deactivate(ctx, ownerID, ids)
	if err != nil {
		return RemoveDuplicatesOutput{}, fmt.Errorf("%w: %v", ErrRemoveDuplicates, err)
	}

	return RemoveDuplicatesOutput{RemovedCount: removed}, nil
}
