// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Level is the severity of an alert.
type Level string

const (
	LevelDanger  Level = "danger"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Levels lists the severity bands in display order.
var Levels = []Level{LevelDanger, LevelWarning, LevelInfo}

// IsValid reports whether l is a known severity.
func (l Level) IsValid() bool {
	return l == LevelDanger || l == LevelWarning || l == LevelInfo
}

// AlertSource identifies which rollup an alert came from.
type AlertSource string

const (
	AlertSourceBudget AlertSource = "budget"
	AlertSourceDue    AlertSource = "due"
)

// DueType distinguishes overdue obligations from upcoming ones.
type DueType string

const (
	DueTypeOverdue  DueType = "overdue"
	DueTypeUpcoming DueType = "upcoming"
)

// IsValid reports whether t is a known due type.
func (t DueType) IsValid() bool {
	return t == DueTypeOverdue || t == DueTypeUpcoming
}

// BudgetAlert is one category's spend-vs-plan state for a period.
type BudgetAlert struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Level        Level           `json:"level"`
	Message      string          `json:"message"`
	Planned      decimal.Decimal `json:"planned"`
	Spent        decimal.Decimal `json:"spent"`
	// Percentage is spent/planned*100 and is never clamped.
	Percentage float64 `json:"percentage"`
}

// DisplayPercentage returns the percentage clamped at 100 for progress bars.
func (a BudgetAlert) DisplayPercentage() float64 {
	if a.Percentage > 100 {
		return 100
	}
	return a.Percentage
}

// MarshalJSON adds display_percentage next to the raw percentage.
func (a BudgetAlert) MarshalJSON() ([]byte, error) {
	type plain BudgetAlert
	return json.Marshal(struct {
		plain
		DisplayPercentage float64 `json:"display_percentage"`
	}{plain: plain(a), DisplayPercentage: a.DisplayPercentage()})
}

// DueDateAlert is one obligation's proximity or overdue state.
type DueDateAlert struct {
	ExpenseID   string          `json:"expense_id"`
	Description string          `json:"description,omitempty"`
	Type        DueType         `json:"type"`
	Level       Level           `json:"level"`
	Message     string          `json:"message"`
	Value       decimal.Decimal `json:"value"`
	// Days is days overdue for overdue alerts and days until due for upcoming ones.
	Days int `json:"days"`
}

// Alert is the unified view of a budget or due-date alert.
type Alert struct {
	ID      string      `json:"id"`
	Source  AlertSource `json:"source"`
	Level   Level       `json:"level"`
	Message string      `json:"message"`
	// Detail is the secondary line shown under the message.
	Detail string        `json:"detail,omitempty"`
	Budget *BudgetAlert  `json:"budget,omitempty"`
	Due    *DueDateAlert `json:"due,omitempty"`
}

// TrendDirection is the qualitative movement of income or expenses.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// TrendStatus is the qualitative outcome of a trend delta computation.
type TrendStatus string

const (
	TrendStatusHasIncreases TrendStatus = "has_increases"
	TrendStatusHasDecreases TrendStatus = "has_decreases"
	TrendStatusStable       TrendStatus = "stable"
)

// Tone is the rendering affect of a value: favorable, unfavorable or neutral.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// TrendVariations summarizes income and expense movement against the historical average.
type TrendVariations struct {
	IncomeTrend       TrendDirection `json:"income_trend"`
	IncomePercentage  float64        `json:"income_percentage"`
	ExpenseTrend      TrendDirection `json:"expense_trend"`
	ExpensePercentage float64        `json:"expense_percentage"`
}

// CategoryTrend is a category's signed percentage delta against its historical average.
// A positive variation means spending increased.
type CategoryTrend struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Variation    float64 `json:"variation"`
}

// TrendReport is the period-over-period rollup for a period.
type TrendReport struct {
	Variations     TrendVariations `json:"variations"`
	CategoryTrends []CategoryTrend `json:"category_trends"`
}

// CategoryReportRow is planned vs realized for one category in a period.
type CategoryReportRow struct {
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	Planned      decimal.Decimal `json:"planned"`
	Realized     decimal.Decimal `json:"realized"`
	Percentage   float64         `json:"percentage"`
	Favorable    bool            `json:"favorable"`
}
