// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert stores the planned amount for (user, category, month, year).
	// When a budget already exists its ID is copied into budget.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserAndPeriod retrieves the user's budgets for a month with their categories.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.BudgetWithCategory, error)

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
