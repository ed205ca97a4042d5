package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// PayEntryUseCase marks an expense as paid, which removes it from due date alerts.
type PayEntryUseCase struct {
	entryRepo adapter.EntryRepository
	clock     adapter.Clock
}

// NewPayEntryUseCase creates a new PayEntryUseCase instance.
func NewPayEntryUseCase(entryRepo adapter.EntryRepository, clock adapter.Clock) *PayEntryUseCase {
	return &PayEntryUseCase{
		entryRepo: entryRepo,
		clock:     clock,
	}
}

// Execute marks the user's expense entry as paid.
func (uc *PayEntryUseCase) Execute(ctx context.Context, entryID, userID uuid.UUID) (*entity.Entry, error) {
	e, err := findOwned(ctx, uc.entryRepo, entryID, userID)
	if err != nil {
		return nil, err
	}

	if e.Type != entity.EntryTypeExpense {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotPayable,
			"only expense entries can be paid",
			domainerror.ErrEntryNotPayable,
		)
	}
	if e.IsPaid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryAlreadyPaid,
			"entry already paid",
			domainerror.ErrEntryAlreadyPaid,
		)
	}

	now := uc.clock.Now().UTC()
	e.PaidAt = &now
	e.UpdatedAt = now
	if err := uc.entryRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to pay entry: %w", err)
	}

	slog.Info("Entry paid", "entryID", e.ID.String(), "userID", userID.String())
	return e, nil
}

func findOwned(ctx context.Context, repo adapter.EntryRepository, entryID, userID uuid.UUID) (*entity.Entry, error) {
	notFound := domainerror.NewEntryError(
		domainerror.ErrCodeEntryNotFound,
		"entry not found",
		domainerror.ErrEntryNotFound,
	)

	e, err := repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}
	if e.UserID != userID {
		return nil, notFound
	}
	return e, nil
}
