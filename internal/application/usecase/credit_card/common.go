// Package credit_card contains credit card settings use cases.
package credit_card

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// validateCard checks the editable fields of a card. name must already be trimmed.
func validateCard(name string, limit decimal.Decimal, closingDay, dueDay int) error {
	if name == "" || utf8.RuneCountInString(name) > entity.MaxCreditCardNameLength {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNameInvalid,
			fmt.Sprintf("name must be between 1 and %d characters", entity.MaxCreditCardNameLength),
			domainerror.ErrCreditCardNameInvalid,
		)
	}
	if limit.IsNegative() {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardLimit,
			"limit must not be negative",
			domainerror.ErrCreditCardLimit,
		)
	}
	if !entity.IsValidBillingDay(closingDay) || !entity.IsValidBillingDay(dueDay) {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidBillingDay,
			fmt.Sprintf("closing_day and due_day must be between %d and %d", entity.MinBillingDay, entity.MaxBillingDay),
			domainerror.ErrInvalidBillingDay,
		)
	}
	return nil
}

func findOwned(ctx context.Context, repo adapter.CreditCardRepository, cardID, userID uuid.UUID) (*entity.CreditCard, error) {
	card, err := repo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find credit card: %w", err)
	}
	if card.UserID != userID {
		return nil, notFound()
	}
	return card, nil
}

func notFound() error {
	return domainerror.NewCreditCardError(
		domainerror.ErrCodeCreditCardNotFound,
		"credit card not found",
		domainerror.ErrCreditCardNotFound,
	)
}
