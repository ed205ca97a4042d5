package rollup

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// TrendDirectionThreshold is the percentage change beyond which income or expenses count as moving.
const TrendDirectionThreshold = 5.0

// GetTrendsInput represents the input for getting trends.
type GetTrendsInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// GetTrendsUseCase handles comparing a period against the average of the previous months.
type GetTrendsUseCase struct {
	entryRepo adapter.EntryRepository
	opts      Options
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(entryRepo adapter.EntryRepository, opts Options) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		entryRepo: entryRepo,
		opts:      opts.withDefaults(),
	}
}

// Execute returns income and expense variations and per-category expense variations
// against the mean of the baseline months. Categories without baseline spending are omitted.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*entity.TrendReport, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	start, end := periodRange(input.Period)
	baselineStart, _ := periodRange(input.Period.AddMonths(-uc.opts.BaselineMonths))
	months := decimal.NewFromInt(int64(uc.opts.BaselineMonths))

	current, err := uc.entryRepo.SumByType(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get current totals: %w", err)
	}
	baseline, err := uc.entryRepo.SumByType(ctx, input.UserID, baselineStart, start)
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline totals: %w", err)
	}

	incomePct := variation(current.Income, baseline.Income.Div(months))
	expensePct := variation(current.Expense, baseline.Expense.Div(months))

	currentByCategory, err := uc.entryRepo.SumByCategory(ctx, input.UserID, entity.EntryTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get current category totals: %w", err)
	}
	baselineByCategory, err := uc.entryRepo.SumByCategory(ctx, input.UserID, entity.EntryTypeExpense, baselineStart, start)
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline category totals: %w", err)
	}

	currentAmounts := make(map[uuid.UUID]decimal.Decimal, len(currentByCategory))
	for _, c := range currentByCategory {
		if c.CategoryID != nil {
			currentAmounts[*c.CategoryID] = c.Amount
		}
	}

	categoryTrends := make([]entity.CategoryTrend, 0, len(baselineByCategory))
	for _, b := range baselineByCategory {
		if b.CategoryID == nil || !b.Amount.IsPositive() {
			continue
		}
		amount, ok := currentAmounts[*b.CategoryID]
		if !ok {
			amount = decimal.Zero
		}
		categoryTrends = append(categoryTrends, entity.CategoryTrend{
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			Variation:    variation(amount, b.Amount.Div(months)),
		})
	}
	sort.SliceStable(categoryTrends, func(i, j int) bool {
		return strings.ToLower(categoryTrends[i].CategoryName) < strings.ToLower(categoryTrends[j].CategoryName)
	})

	return &entity.TrendReport{
		Variations: entity.TrendVariations{
			IncomeTrend:       direction(incomePct),
			IncomePercentage:  incomePct,
			ExpenseTrend:      direction(expensePct),
			ExpensePercentage: expensePct,
		},
		CategoryTrends: categoryTrends,
	}, nil
}

// variation returns (current - average) / average * 100, rounded to one decimal.
// It is 0 when there is no average to compare against.
func variation(current, average decimal.Decimal) float64 {
	if !average.IsPositive() {
		return 0
	}
	return roundOne(current.Sub(average).Div(average).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func direction(percentage float64) entity.TrendDirection {
	switch {
	case percentage > TrendDirectionThreshold:
		return entity.TrendUp
	case percentage < -TrendDirectionThreshold:
		return entity.TrendDown
	default:
		return entity.TrendStable
	}
}
