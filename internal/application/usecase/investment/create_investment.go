package investment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Description string
	Period      entity.Period
	Amounts     Amounts
}

// CreateInvestmentUseCase handles investment creation.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	categoryRepo   adapter.CategoryRepository
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, categoryRepo adapter.CategoryRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
		categoryRepo:   categoryRepo,
	}
}

// Execute validates and stores a new investment. Omitted amounts default to zero.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*entity.InvestmentWithCategory, error) {
	if input.CategoryID == nil {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			"category_id is required",
			domainerror.ErrInvestmentCategoryInvalid,
		)
	}
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}
	if err := input.Amounts.validate(); err != nil {
		return nil, err
	}

	category, err := ensureInvestmentCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	inv := entity.NewInvestment(input.UserID, input.CategoryID, strings.TrimSpace(input.Description), input.Period)
	input.Amounts.applyTo(inv)

	if err := uc.investmentRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &entity.InvestmentWithCategory{
		Investment: inv,
		Category:   category,
	}, nil
}
