package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing a month's investments.
type ListInvestmentsInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// ListInvestmentsOutput holds the month's investments and their totals.
type ListInvestmentsOutput struct {
	Period      entity.Period
	Investments []*entity.InvestmentWithCategory
	Summary     entity.InvestmentSummary
}

// ListInvestmentsUseCase lists investments for a month.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute returns the month's investments with the summary totals.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	items, err := uc.investmentRepo.FindByUserAndPeriod(ctx, input.UserID, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	investments := make([]*entity.Investment, len(items))
	for i, item := range items {
		investments[i] = item.Investment
	}

	return &ListInvestmentsOutput{
		Period:      input.Period,
		Investments: items,
		Summary:     entity.SummarizeInvestments(investments),
	}, nil
}
