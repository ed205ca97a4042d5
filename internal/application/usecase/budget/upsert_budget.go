// Package budget contains use cases for monthly planned amounts.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// UpsertBudgetInput represents the input for setting a category's planned amount.
type UpsertBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Planned    decimal.Decimal
	Period     entity.Period
}

// UpsertBudgetUseCase creates or replaces the planned amount for a category and month.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates and stores the budget.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*entity.BudgetWithCategory, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetInvalidPeriod,
			fmt.Sprintf("month must be 1-12 and year %d-%d", entity.MinPeriodYear, entity.MaxPeriodYear),
			domainerror.ErrInvalidPeriod,
		)
	}
	if input.Planned.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativePlannedAmount,
			"planned amount must not be negative",
			domainerror.ErrNegativePlannedAmount,
		)
	}

	category, err := uc.findBudgetCategory(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Planned, input.Period)
	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return &entity.BudgetWithCategory{
		Budget:   budget,
		Category: category,
	}, nil
}

func (uc *UpsertBudgetUseCase) findBudgetCategory(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
	invalid := domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetCategoryInvalid,
		"category must be one of your expense or income categories",
		domainerror.ErrBudgetCategoryInvalid,
	)

	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID || category.Type == entity.CategoryTypeInvestment {
		return nil, invalid
	}
	return category, nil
}
