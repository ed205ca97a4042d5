// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense, income or investment).
type CategoryType string

const (
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeInvestment CategoryType = "investment"
)

// IsValid reports whether t is a known category type.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeExpense, CategoryTypeIncome, CategoryTypeInvestment:
		return true
	}
	return false
}

// MaxCategoryNameLength is the maximum length of a category name.
const MaxCategoryNameLength = 50

// Category represents a user-defined category for entries, budgets and investments.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
