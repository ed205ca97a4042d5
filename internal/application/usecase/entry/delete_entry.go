package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
)

// DeleteEntryUseCase handles entry deletion.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute removes the user's entry.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, entryID, userID uuid.UUID) error {
	if _, err := findOwned(ctx, uc.entryRepo, entryID, userID); err != nil {
		return err
	}
	if err := uc.entryRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
