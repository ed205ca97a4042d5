package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// ListEntriesOutput holds a month's entries and their totals.
type ListEntriesOutput struct {
	Period       entity.Period
	Entries      []*entity.EntryWithCategory
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// ListEntriesUseCase lists a month's entries.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute returns the entries dated within the period, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, userID uuid.UUID, period entity.Period) (*ListEntriesOutput, error) {
	if !period.IsValid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryInvalidPeriod,
			"invalid month or year",
			domainerror.ErrInvalidPeriod,
		)
	}

	entries, err := uc.entryRepo.FindByUserAndRange(ctx, userID, period.Start(time.UTC), period.End(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	out := &ListEntriesOutput{
		Period:       period,
		Entries:      entries,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, e := range entries {
		switch e.Entry.Type {
		case entity.EntryTypeIncome:
			out.TotalIncome = out.TotalIncome.Add(e.Entry.Amount)
		case entity.EntryTypeExpense:
			out.TotalExpense = out.TotalExpense.Add(e.Entry.Amount)
		}
	}
	return out, nil
}
