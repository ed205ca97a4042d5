// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is the planned amount for a category in a month.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Planned    decimal.Decimal
	Month      int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, planned decimal.Decimal, period Period) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Planned:    planned,
		Month:      period.Month,
		Year:       period.Year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Period returns the month the budget applies to.
func (b *Budget) Period() Period {
	return Period{Month: b.Month, Year: b.Year}
}

// BudgetWithCategory represents a budget with its associated category.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}
