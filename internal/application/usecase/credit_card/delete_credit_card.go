package credit_card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
)

// DeleteCreditCardUseCase handles credit card deletion.
type DeleteCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(cardRepo adapter.CreditCardRepository) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute removes the user's card.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, cardID, userID uuid.UUID) error {
	if _, err := findOwned(ctx, uc.cardRepo, cardID, userID); err != nil {
		return err
	}
	if err := uc.cardRepo.Delete(ctx, cardID); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
	return nil
}
