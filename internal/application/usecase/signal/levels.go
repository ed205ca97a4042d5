// Package signal contains the financial signal evaluator: alert classification,
// trend deltas and category report derivation.
package signal

import (
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// Budget usage thresholds, in percent of the planned amount.
const (
	BudgetDangerThreshold  = 100.0
	BudgetWarningThreshold = 80.0
)

// Due date windows, in days until due.
const (
	DueWarningDays = 3
	DueInfoDays    = 7
)

// BudgetLevel maps a budget usage percentage to a level.
// ok is false when the usage does not warrant an alert.
func BudgetLevel(percentage float64) (level entity.Level, ok bool) {
	switch {
	case percentage >= BudgetDangerThreshold:
		return entity.LevelDanger, true
	case percentage >= BudgetWarningThreshold:
		return entity.LevelWarning, true
	default:
		return "", false
	}
}

// DueLevel maps an obligation's state to a level.
// ok is false when an upcoming obligation is outside the alert window.
func DueLevel(dueType entity.DueType, days int) (level entity.Level, ok bool) {
	if dueType == entity.DueTypeOverdue {
		return entity.LevelDanger, true
	}
	switch {
	case days <= DueWarningDays:
		return entity.LevelWarning, true
	case days <= DueInfoDays:
		return entity.LevelInfo, true
	default:
		return "", false
	}
}
