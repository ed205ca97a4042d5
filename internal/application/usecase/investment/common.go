// Package investment contains use cases for the monthly investments screen.
package investment

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

// Amounts holds the money fields of an investment. Nil fields keep their current value.
type Amounts struct {
	InitialBalance *decimal.Decimal
	Contribution   *decimal.Decimal
	Dividends      *decimal.Decimal
	Withdrawal     *decimal.Decimal
}

func (a Amounts) validate() error {
	for _, v := range []*decimal.Decimal{a.InitialBalance, a.Contribution, a.Dividends, a.Withdrawal} {
		if v != nil && v.IsNegative() {
			return domainerror.NewInvestmentError(
				domainerror.ErrCodeNegativeInvestmentAmount,
				"initial_balance, contribution, dividends and withdrawal must not be negative",
				domainerror.ErrNegativeInvestmentAmount,
			)
		}
	}
	return nil
}

func (a Amounts) applyTo(inv *entity.Investment) {
	if a.InitialBalance != nil {
		inv.InitialBalance = *a.InitialBalance
	}
	if a.Contribution != nil {
		inv.Contribution = *a.Contribution
	}
	if a.Dividends != nil {
		inv.Dividends = *a.Dividends
	}
	if a.Withdrawal != nil {
		inv.Withdrawal = *a.Withdrawal
	}
}

// ensureInvestmentCategory checks that the category belongs to the user and is an investment category.
func ensureInvestmentCategory(ctx context.Context, repo adapter.CategoryRepository, categoryID, userID uuid.UUID) (*entity.Category, error) {
	invalid := domainerror.NewInvestmentError(
		domainerror.ErrCodeInvestmentCategoryInvalid,
		"category must be one of your investment categories",
		domainerror.ErrInvestmentCategoryInvalid,
	)

	category, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID || category.Type != entity.CategoryTypeInvestment {
		return nil, invalid
	}
	return category, nil
}

func validatePeriod(period entity.Period) error {
	if !period.IsValid() {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentInvalidPeriod,
			fmt.Sprintf("month must be 1-12 and year %d-%d", entity.MinPeriodYear, entity.MaxPeriodYear),
			domainerror.ErrInvalidPeriod,
		)
	}
	return nil
}

func findOwned(ctx context.Context, repo adapter.InvestmentRepository, investmentID, userID uuid.UUID) (*entity.Investment, error) {
	inv, err := repo.FindByID(ctx, investmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}
	if inv.UserID != userID {
		return nil, notFound()
	}
	return inv, nil
}

func notFound() error {
	return domainerror.NewInvestmentError(
		domainerror.ErrCodeInvestmentNotFound,
		"investment not found",
		domainerror.ErrInvestmentNotFound,
	)
}
