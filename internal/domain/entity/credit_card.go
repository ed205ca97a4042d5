// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Credit card constraints.
const (
	MaxCreditCardNameLength = 50
	MinBillingDay           = 1
	MaxBillingDay           = 31
)

// CreditCard represents a credit card registered in the settings screen.
type CreditCard struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Limit      decimal.Decimal
	ClosingDay int
	DueDay     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(userID uuid.UUID, name string, limit decimal.Decimal, closingDay, dueDay int) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Limit:      limit,
		ClosingDay: closingDay,
		DueDay:     dueDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsValidBillingDay reports whether day is a valid closing or due day.
func IsValidBillingDay(day int) bool {
	return day >= MinBillingDay && day <= MaxBillingDay
}
