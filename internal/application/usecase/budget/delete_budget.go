package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// DeleteBudgetUseCase removes a budget.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes the user's budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, budgetID, userID uuid.UUID) error {
	notFound := domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)

	budget, err := uc.budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return notFound
		}
		return fmt.Errorf("failed to find budget: %w", err)
	}
	if budget.UserID != userID {
		return notFound
	}

	if err := uc.budgetRepo.Delete(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
