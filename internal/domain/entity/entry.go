// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType represents whether an entry is income or expense.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// Entry is a realized or scheduled income or expense.
type Entry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Description string
	Type        EntryType
	Amount      decimal.Decimal
	Date        time.Time
	// DueDate is set for expenses that must be paid by a given day.
	DueDate   *time.Time
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewEntry creates a new Entry entity.
func NewEntry(userID uuid.UUID, categoryID *uuid.UUID, description string, entryType EntryType, amount decimal.Decimal, date time.Time, dueDate *time.Time) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Description: description,
		Type:        entryType,
		Amount:      amount,
		Date:        date,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsPaid reports whether the entry has been marked as paid.
func (e *Entry) IsPaid() bool {
	return e.PaidAt != nil
}

// EntryWithCategory represents an entry with its associated category.
type EntryWithCategory struct {
	Entry    *Entry
	Category *Category
}
