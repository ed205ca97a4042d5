package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// ListBudgetsUseCase lists a month's budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns the user's budgets for the period.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.BudgetWithCategory, error) {
	if !period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetInvalidPeriod,
			"invalid month or year",
			domainerror.ErrInvalidPeriod,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}
