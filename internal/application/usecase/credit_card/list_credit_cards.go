package credit_card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// ListCreditCardsUseCase lists a user's credit cards.
type ListCreditCardsUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(cardRepo adapter.CreditCardRepository) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute returns the user's cards ordered by name.
func (uc *ListCreditCardsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	return cards, nil
}
