// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create creates a new investment in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByUserAndPeriod retrieves the user's investments for a month with their categories.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.InvestmentWithCategory, error)

	// Update updates an existing investment in the database.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete removes an investment from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
