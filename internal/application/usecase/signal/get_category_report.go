package signal

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// GetCategoryReportInput represents the input for getting the category report.
type GetCategoryReportInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// CategoryReport is one side (income or expense) of the category report.
type CategoryReport struct {
	Kind          entity.EntryType           `json:"kind"`
	Available     bool                       `json:"available"`
	Rows          []entity.CategoryReportRow `json:"rows"`
	Slices        []ChartSlice               `json:"slices"`
	Bars          []BarRow                   `json:"bars"`
	TotalPlanned  decimal.Decimal            `json:"total_planned"`
	TotalRealized decimal.Decimal            `json:"total_realized"`
}

// GetCategoryReportOutput represents the output of getting the category report.
type GetCategoryReportOutput struct {
	Period      entity.Period  `json:"period"`
	PeriodLabel string         `json:"period_label"`
	Income      CategoryReport `json:"income"`
	Expense     CategoryReport `json:"expense"`
}

// GetCategoryReportUseCase handles building the income and expense category reports.
type GetCategoryReportUseCase struct {
	source adapter.RollupSource
}

// NewGetCategoryReportUseCase creates a new GetCategoryReportUseCase instance.
func NewGetCategoryReportUseCase(source adapter.RollupSource) *GetCategoryReportUseCase {
	return &GetCategoryReportUseCase{
		source: source,
	}
}

// Execute fetches the income and expense rollups concurrently. A side that fails is
// logged and returned as unavailable; the call fails only when both sides fail.
func (uc *GetCategoryReportUseCase) Execute(ctx context.Context, input GetCategoryReportInput) (*GetCategoryReportOutput, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	var (
		wg                    sync.WaitGroup
		income, expense       CategoryReport
		incomeErr, expenseErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		income, incomeErr = uc.buildReport(ctx, input, entity.EntryTypeIncome)
	}()
	go func() {
		defer wg.Done()
		expense, expenseErr = uc.buildReport(ctx, input, entity.EntryTypeExpense)
	}()
	wg.Wait()

	if incomeErr != nil && expenseErr != nil {
		return nil, rollupUnavailable("category reports", errors.Join(incomeErr, expenseErr))
	}

	return &GetCategoryReportOutput{
		Period:      input.Period,
		PeriodLabel: input.Period.Label(),
		Income:      income,
		Expense:     expense,
	}, nil
}

func (uc *GetCategoryReportUseCase) buildReport(ctx context.Context, input GetCategoryReportInput, kind entity.EntryType) (CategoryReport, error) {
	rows, err := uc.source.CategoryReport(ctx, input.UserID, input.Period, kind)
	if err != nil {
		slog.Warn("Failed to fetch category report",
			"userID", input.UserID.String(),
			"period", input.Period.Key(),
			"type", string(kind),
			"error", err,
		)
		return emptyReport(kind), err
	}

	rows = ComputeReportRows(kind, rows)
	planned, realized := ReportTotals(rows)

	return CategoryReport{
		Kind:          kind,
		Available:     true,
		Rows:          rows,
		Slices:        ChartSlices(rows),
		Bars:          BarRows(rows),
		TotalPlanned:  planned,
		TotalRealized: realized,
	}, nil
}

func emptyReport(kind entity.EntryType) CategoryReport {
	return CategoryReport{
		Kind:          kind,
		Rows:          []entity.CategoryReportRow{},
		Slices:        []ChartSlice{},
		Bars:          []BarRow{},
		TotalPlanned:  decimal.Zero,
		TotalRealized: decimal.Zero,
	}
}
