package rollup

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/application/usecase/signal"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// GetCategoryReportInput represents the input for getting the category report.
type GetCategoryReportInput struct {
	UserID uuid.UUID
	Period entity.Period
	Kind   entity.EntryType
}

// GetCategoryReportUseCase handles computing planned vs realized per category.
type GetCategoryReportUseCase struct {
	budgetRepo adapter.BudgetRepository
	entryRepo  adapter.EntryRepository
}

// NewGetCategoryReportUseCase creates a new GetCategoryReportUseCase instance.
func NewGetCategoryReportUseCase(budgetRepo adapter.BudgetRepository, entryRepo adapter.EntryRepository) *GetCategoryReportUseCase {
	return &GetCategoryReportUseCase{
		budgetRepo: budgetRepo,
		entryRepo:  entryRepo,
	}
}

// Execute returns one row per category of the given kind that has a budget or realized
// entries in the period. Entries without a category are reported as "Sem categoria".
func (uc *GetCategoryReportUseCase) Execute(ctx context.Context, input GetCategoryReportInput) ([]entity.CategoryReportRow, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}
	if !input.Kind.IsValid() {
		return nil, domainerror.NewSignalError(
			domainerror.ErrCodeInvalidReportType,
			"type must be income or expense",
			domainerror.ErrInvalidReportType,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	start, end := periodRange(input.Period)
	realized, err := uc.entryRepo.SumByCategory(ctx, input.UserID, input.Kind, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get realized totals: %w", err)
	}

	rows := make(map[string]*entity.CategoryReportRow)
	rowFor := func(id, name string) *entity.CategoryReportRow {
		row, ok := rows[id]
		if !ok {
			row = &entity.CategoryReportRow{
				CategoryID:   id,
				CategoryName: name,
				Planned:      decimal.Zero,
				Realized:     decimal.Zero,
			}
			rows[id] = row
		}
		return row
	}

	for _, b := range budgets {
		if b.Category == nil || string(b.Category.Type) != string(input.Kind) {
			continue
		}
		row := rowFor(b.Budget.CategoryID.String(), b.Category.Name)
		row.Planned = row.Planned.Add(b.Budget.Planned)
	}

	for _, r := range realized {
		id, name := "", entity.UncategorizedLabel
		if r.CategoryID != nil {
			id, name = r.CategoryID.String(), r.CategoryName
		}
		row := rowFor(id, name)
		row.Realized = row.Realized.Add(r.Amount)
	}

	out := make([]entity.CategoryReportRow, 0, len(rows))
	for _, row := range rows {
		row.Percentage = roundOne(signal.Percentage(row.Realized, row.Planned))
		out = append(out, *row)
	}
	// Rows come from a map; the id breaks name ties so the order is stable across calls.
	slices.SortStableFunc(out, func(a, b entity.CategoryReportRow) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.CategoryName), strings.ToLower(b.CategoryName)),
			strings.Compare(a.CategoryID, b.CategoryID),
		)
	})

	return out, nil
}
