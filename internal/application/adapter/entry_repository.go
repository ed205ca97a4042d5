// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByUserAndRange retrieves the user's entries dated within [start, end) with their categories.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.EntryWithCategory, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByCategory totals entries of the given type per category within [start, end).
	// Entries without a category are grouped under a nil CategoryID.
	SumByCategory(ctx context.Context, userID uuid.UUID, entryType entity.EntryType, start, end time.Time) ([]*CategoryAmount, error)

	// SumByType totals income and expense entries within [start, end).
	SumByType(ctx context.Context, userID uuid.UUID, start, end time.Time) (*TypeTotals, error)

	// FindUnpaidWithDueDate retrieves unpaid expense entries whose due date is before the given instant.
	FindUnpaidWithDueDate(ctx context.Context, userID uuid.UUID, before time.Time) ([]*entity.Entry, error)
}

// CategoryAmount is a per-category total.
type CategoryAmount struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
}

// TypeTotals holds income and expense totals for a range.
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}
