// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is shown when an investment's category no longer exists.
const UncategorizedLabel = "Sem categoria"

// Investment represents one investment position movement for a month.
type Investment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CategoryID     *uuid.UUID
	Description    string
	InitialBalance decimal.Decimal
	Contribution   decimal.Decimal
	Dividends      decimal.Decimal
	Withdrawal     decimal.Decimal
	Month          int
	Year           int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(userID uuid.UUID, categoryID *uuid.UUID, description string, period Period) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:             uuid.New(),
		UserID:         userID,
		CategoryID:     categoryID,
		Description:    description,
		InitialBalance: decimal.Zero,
		Contribution:   decimal.Zero,
		Dividends:      decimal.Zero,
		Withdrawal:     decimal.Zero,
		Month:          period.Month,
		Year:           period.Year,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// FinalBalance returns initial + contribution + dividends - withdrawal.
func (i *Investment) FinalBalance() decimal.Decimal {
	return i.InitialBalance.Add(i.Contribution).Add(i.Dividends).Sub(i.Withdrawal)
}

// Period returns the month the investment belongs to.
func (i *Investment) Period() Period {
	return Period{Month: i.Month, Year: i.Year}
}

// InvestmentWithCategory pairs an investment with its category, which may be missing.
type InvestmentWithCategory struct {
	Investment *Investment
	Category   *Category
}

// CategoryName returns the category name or the uncategorized label.
func (i InvestmentWithCategory) CategoryName() string {
	if i.Category == nil {
		return UncategorizedLabel
	}
	return i.Category.Name
}

// InvestmentSummary totals a list of investments.
type InvestmentSummary struct {
	TotalContributions decimal.Decimal
	TotalDividends     decimal.Decimal
	TotalWithdrawals   decimal.Decimal
	TotalBalance       decimal.Decimal
}

// SummarizeInvestments totals contributions, dividends, withdrawals and final balances.
func SummarizeInvestments(items []*Investment) InvestmentSummary {
	summary := InvestmentSummary{
		TotalContributions: decimal.Zero,
		TotalDividends:     decimal.Zero,
		TotalWithdrawals:   decimal.Zero,
		TotalBalance:       decimal.Zero,
	}
	for _, inv := range items {
		summary.TotalContributions = summary.TotalContributions.Add(inv.Contribution)
		summary.TotalDividends = summary.TotalDividends.Add(inv.Dividends)
		summary.TotalWithdrawals = summary.TotalWithdrawals.Add(inv.Withdrawal)
		summary.TotalBalance = summary.TotalBalance.Add(inv.FinalBalance())
	}
	return summary
}
