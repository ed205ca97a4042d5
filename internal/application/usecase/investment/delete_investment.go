package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
)

// DeleteInvestmentUseCase handles investment deletion.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute removes the user's investment.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, investmentID, userID uuid.UUID) error {
	if _, err := findOwned(ctx, uc.investmentRepo, investmentID, userID); err != nil {
		return err
	}
	if err := uc.investmentRepo.Delete(ctx, investmentID); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return nil
}
