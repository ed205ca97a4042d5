package investment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// UpdateInvestmentInput represents the input for investment update. Nil fields are unchanged.
type UpdateInvestmentInput struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	Description  *string
	Amounts      Amounts
}

// UpdateInvestmentUseCase handles investment updates.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	categoryRepo   adapter.CategoryRepository
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, categoryRepo adapter.CategoryRepository) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
		categoryRepo:   categoryRepo,
	}
}

// Execute applies the changes to the user's investment.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*entity.InvestmentWithCategory, error) {
	inv, err := findOwned(ctx, uc.investmentRepo, input.InvestmentID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := input.Amounts.validate(); err != nil {
		return nil, err
	}

	result := &entity.InvestmentWithCategory{Investment: inv}
	if input.CategoryID != nil {
		category, err := ensureInvestmentCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
		inv.CategoryID = input.CategoryID
		result.Category = category
	} else if inv.CategoryID != nil {
		// A deleted category leaves the investment uncategorized.
		if category, err := uc.categoryRepo.FindByID(ctx, *inv.CategoryID); err == nil {
			result.Category = category
		}
	}

	if input.Description != nil {
		inv.Description = strings.TrimSpace(*input.Description)
	}
	input.Amounts.applyTo(inv)
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}
	return result, nil
}
