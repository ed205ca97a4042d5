package signal

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// GetTrendSummaryInput represents the input for getting the trend summary.
type GetTrendSummaryInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// GetTrendSummaryOutput represents the output of getting the trend summary.
type GetTrendSummaryOutput struct {
	Period      entity.Period `json:"period"`
	PeriodLabel string        `json:"period_label"`
	TrendSummary
}

// GetTrendSummaryUseCase handles deriving the trend summary for a period.
type GetTrendSummaryUseCase struct {
	source adapter.RollupSource
}

// NewGetTrendSummaryUseCase creates a new GetTrendSummaryUseCase instance.
func NewGetTrendSummaryUseCase(source adapter.RollupSource) *GetTrendSummaryUseCase {
	return &GetTrendSummaryUseCase{
		source: source,
	}
}

// Execute fetches the trend rollup and computes its deltas.
func (uc *GetTrendSummaryUseCase) Execute(ctx context.Context, input GetTrendSummaryInput) (*GetTrendSummaryOutput, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	report, err := uc.source.Trends(ctx, input.UserID, input.Period)
	if err != nil {
		return nil, rollupUnavailable("trends", err)
	}

	return &GetTrendSummaryOutput{
		Period:       input.Period,
		PeriodLabel:  input.Period.Label(),
		TrendSummary: ComputeTrendDeltas(report),
	}, nil
}
