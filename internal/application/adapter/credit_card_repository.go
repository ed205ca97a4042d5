// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	Create(ctx context.Context, card *entity.CreditCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error)
	Update(ctx context.Context, card *entity.CreditCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}
