package credit_card

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CreateCreditCardInput represents the input for credit card creation.
type CreateCreditCardInput struct {
	UserID     uuid.UUID
	Name       string
	Limit      decimal.Decimal
	ClosingDay int
	DueDay     int
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation.
type CreateCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(cardRepo adapter.CreditCardRepository) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute validates and stores a new credit card.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateCard(name, input.Limit, input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

	card := entity.NewCreditCard(input.UserID, name, input.Limit, input.ClosingDay, input.DueDay)
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCreditCardOutput{
		CreditCard: card,
	}, nil
}
