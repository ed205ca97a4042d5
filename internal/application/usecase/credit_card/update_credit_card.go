package credit_card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// UpdateCreditCardInput represents the input for credit card update.
// Nil fields are left unchanged.
type UpdateCreditCardInput struct {
	CardID     uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Limit      *decimal.Decimal
	ClosingDay *int
	DueDay     *int
}

// UpdateCreditCardUseCase handles credit card updates.
type UpdateCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(cardRepo adapter.CreditCardRepository) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute applies the changes and validates the resulting card.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*entity.CreditCard, error) {
	card, err := findOwned(ctx, uc.cardRepo, input.CardID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		card.Name = strings.TrimSpace(*input.Name)
	}
	if input.Limit != nil {
		card.Limit = *input.Limit
	}
	if input.ClosingDay != nil {
		card.ClosingDay = *input.ClosingDay
	}
	if input.DueDay != nil {
		card.DueDay = *input.DueDay
	}
	if err := validateCard(card.Name, card.Limit, card.ClosingDay, card.DueDay); err != nil {
		return nil, err
	}

	card.UpdatedAt = time.Now().UTC()
	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}
	return card, nil
}
