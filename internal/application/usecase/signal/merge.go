// Package signal contains the financial signal evaluator: alert classification,
// trend deltas and category report derivation.
package signal

import (
	"fmt"
	"strings"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/domain/valueobject"
)

// Alert id prefixes.
const (
	BudgetAlertPrefix = "budget-"
	DueAlertPrefix    = "due-"
)

// BudgetAlertID returns the unified id of a budget alert.
func BudgetAlertID(categoryID string) string {
	return BudgetAlertPrefix + categoryID
}

// DueAlertID returns the unified id of a due-date alert.
func DueAlertID(expenseID string) string {
	return DueAlertPrefix + expenseID
}

// IsAlertID reports whether id is a synthesized budget or due-date alert id.
func IsAlertID(id string) bool {
	for _, prefix := range []string{BudgetAlertPrefix, DueAlertPrefix} {
		if rest, ok := strings.CutPrefix(id, prefix); ok && strings.TrimSpace(rest) != "" {
			return true
		}
	}
	return false
}

// BandCounts counts alerts per severity band.
type BandCounts struct {
	Danger  int `json:"danger"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
	Total   int `json:"total"`
}

// ClassifyAndMerge merges budget and due-date rollups into one list of unified alerts,
// drops the dismissed ones and orders the rest danger, warning, info.
// Levels are taken as given. Malformed input is rejected as a whole.
func ClassifyAndMerge(
	budget []entity.BudgetAlert,
	due []entity.DueDateAlert,
	dismissed map[string]struct{},
) ([]entity.Alert, error) {
	merged, err := Merge(budget, due)
	if err != nil {
		return nil, err
	}
	return OrderBySeverity(FilterDismissed(merged, dismissed)), nil
}

// Merge validates the rollups and converts them to unified alerts,
// budget alerts first, each list in input order.
func Merge(budget []entity.BudgetAlert, due []entity.DueDateAlert) ([]entity.Alert, error) {
	merged := make([]entity.Alert, 0, len(budget)+len(due))
	seen := make(map[string]struct{}, len(budget)+len(due))

	add := func(alert entity.Alert) error {
		if _, ok := seen[alert.ID]; ok {
			return domainerror.NewSignalError(
				domainerror.ErrCodeDuplicateAlertID,
				fmt.Sprintf("alert id %q appears more than once", alert.ID),
				domainerror.ErrDuplicateAlertID,
			)
		}
		seen[alert.ID] = struct{}{}
		merged = append(merged, alert)
		return nil
	}

	for i := range budget {
		b := budget[i]
		if err := validateBudgetAlert(b); err != nil {
			return nil, err
		}
		if err := add(entity.Alert{
			ID:      BudgetAlertID(b.CategoryID),
			Source:  entity.AlertSourceBudget,
			Level:   b.Level,
			Message: b.Message,
			Detail:  budgetDetail(b),
			Budget:  &b,
		}); err != nil {
			return nil, err
		}
	}

	for i := range due {
		d := due[i]
		if err := validateDueAlert(d); err != nil {
			return nil, err
		}
		if err := add(entity.Alert{
			ID:      DueAlertID(d.ExpenseID),
			Source:  entity.AlertSourceDue,
			Level:   d.Level,
			Message: d.Message,
			Detail:  dueDetail(d),
			Due:     &d,
		}); err != nil {
			return nil, err
		}
	}

	return merged, nil
}

// FilterDismissed returns the alerts whose id is not in dismissed.
func FilterDismissed(alerts []entity.Alert, dismissed map[string]struct{}) []entity.Alert {
	if len(dismissed) == 0 {
		return alerts
	}
	visible := make([]entity.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if _, ok := dismissed[alert.ID]; ok {
			continue
		}
		visible = append(visible, alert)
	}
	return visible
}

// OrderBySeverity partitions alerts into danger, warning and info bands,
// keeping input order within each band.
func OrderBySeverity(alerts []entity.Alert) []entity.Alert {
	ordered := make([]entity.Alert, 0, len(alerts))
	for _, level := range entity.Levels {
		for _, alert := range alerts {
			if alert.Level == level {
				ordered = append(ordered, alert)
			}
		}
	}
	return ordered
}

// CountBands counts alerts per severity band.
func CountBands(alerts []entity.Alert) BandCounts {
	var counts BandCounts
	for _, alert := range alerts {
		switch alert.Level {
		case entity.LevelDanger:
			counts.Danger++
		case entity.LevelWarning:
			counts.Warning++
		case entity.LevelInfo:
			counts.Info++
		}
	}
	counts.Total = counts.Danger + counts.Warning + counts.Info
	return counts
}

func validateBudgetAlert(b entity.BudgetAlert) error {
	if strings.TrimSpace(b.CategoryID) == "" {
		return domainerror.NewSignalError(
			domainerror.ErrCodeMissingAlertID,
			"budget alert is missing category_id",
			domainerror.ErrMissingAlertID,
		)
	}
	if !b.Level.IsValid() {
		return domainerror.NewSignalError(
			domainerror.ErrCodeInvalidAlertLevel,
			fmt.Sprintf("budget alert %q has invalid level %q", b.CategoryID, b.Level),
			domainerror.ErrInvalidAlertLevel,
		)
	}
	if b.Planned.IsNegative() {
		return domainerror.NewSignalError(
			domainerror.ErrCodeNegativePlanned,
			fmt.Sprintf("budget alert %q has negative planned amount", b.CategoryID),
			domainerror.ErrNegativePlanned,
		)
	}
	return nil
}

func validateDueAlert(d entity.DueDateAlert) error {
	if strings.TrimSpace(d.ExpenseID) == "" {
		return domainerror.NewSignalError(
			domainerror.ErrCodeMissingAlertID,
			"due date alert is missing expense_id",
			domainerror.ErrMissingAlertID,
		)
	}
	if !d.Type.IsValid() {
		return domainerror.NewSignalError(
			domainerror.ErrCodeInvalidDueType,
			fmt.Sprintf("due date alert %q has invalid type %q", d.ExpenseID, d.Type),
			domainerror.ErrInvalidDueType,
		)
	}
	if !d.Level.IsValid() {
		return domainerror.NewSignalError(
			domainerror.ErrCodeInvalidAlertLevel,
			fmt.Sprintf("due date alert %q has invalid level %q", d.ExpenseID, d.Level),
			domainerror.ErrInvalidAlertLevel,
		)
	}
	return nil
}

func budgetDetail(b entity.BudgetAlert) string {
	planned := valueobject.FormatCurrencyValue(b.Planned)
	spent := valueobject.FormatCurrencyValue(b.Spent)
	if b.Level == entity.LevelDanger {
		return fmt.Sprintf("Meta: %s | Gasto: %s", planned, spent)
	}
	return fmt.Sprintf("%s de %s", spent, planned)
}

func dueDetail(d entity.DueDateAlert) string {
	value := valueobject.FormatCurrencyValue(d.Value)
	if d.Type == entity.DueTypeOverdue {
		return fmt.Sprintf("Valor: %s | Vencido há %d dia(s)", value, d.Days)
	}
	return fmt.Sprintf("Valor: %s | Vence em %d dia(s)", value, d.Days)
}
