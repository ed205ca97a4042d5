package rollup

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// Source serves rollups computed from the service's own budgets and entries.
type Source struct {
	budgetAlerts   *GetBudgetAlertsUseCase
	dueDateAlerts  *GetDueDateAlertsUseCase
	trends         *GetTrendsUseCase
	categoryReport *GetCategoryReportUseCase
}

var _ adapter.RollupSource = (*Source)(nil)

// NewSource creates a new Source instance.
func NewSource(
	budgetAlerts *GetBudgetAlertsUseCase,
	dueDateAlerts *GetDueDateAlertsUseCase,
	trends *GetTrendsUseCase,
	categoryReport *GetCategoryReportUseCase,
) *Source {
	return &Source{
		budgetAlerts:   budgetAlerts,
		dueDateAlerts:  dueDateAlerts,
		trends:         trends,
		categoryReport: categoryReport,
	}
}

// BudgetAlerts implements adapter.RollupSource.
func (s *Source) BudgetAlerts(ctx context.Context, userID uuid.UUID, period entity.Period) ([]entity.BudgetAlert, error) {
	return s.budgetAlerts.Execute(ctx, GetBudgetAlertsInput{UserID: userID, Period: period})
}

// DueDateAlerts implements adapter.RollupSource.
func (s *Source) DueDateAlerts(ctx context.Context, userID uuid.UUID) ([]entity.DueDateAlert, error) {
	return s.dueDateAlerts.Execute(ctx, GetDueDateAlertsInput{UserID: userID})
}

// Trends implements adapter.RollupSource.
func (s *Source) Trends(ctx context.Context, userID uuid.UUID, period entity.Period) (*entity.TrendReport, error) {
	return s.trends.Execute(ctx, GetTrendsInput{UserID: userID, Period: period})
}

// CategoryReport implements adapter.RollupSource.
func (s *Source) CategoryReport(ctx context.Context, userID uuid.UUID, period entity.Period, kind entity.EntryType) ([]entity.CategoryReportRow, error) {
	return s.categoryReport.Execute(ctx, GetCategoryReportInput{UserID: userID, Period: period, Kind: kind})
}
