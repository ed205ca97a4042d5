// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// RollupSource provides the pre-aggregated rollups the signal evaluator consumes.
type RollupSource interface {
	// BudgetAlerts returns per-category spend-vs-plan alerts for a period.
	BudgetAlerts(ctx context.Context, userID uuid.UUID, period entity.Period) ([]entity.BudgetAlert, error)

	// DueDateAlerts returns overdue and upcoming obligations. It is not period-scoped.
	DueDateAlerts(ctx context.Context, userID uuid.UUID) ([]entity.DueDateAlert, error)

	// Trends returns income, expense and per-category variations against the historical average.
	Trends(ctx context.Context, userID uuid.UUID, period entity.Period) (*entity.TrendReport, error)

	// CategoryReport returns planned vs realized rows of the given kind for a period.
	CategoryReport(ctx context.Context, userID uuid.UUID, period entity.Period, kind entity.EntryType) ([]entity.CategoryReportRow, error)
}
