package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/signals/internal/application/usecase/rollup"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
)

// RollupController serves the rollups computed from this service's own budgets and
// entries, in the JSON shape the upstream client consumes.
type RollupController struct {
	periods        *PeriodResolver
	budgetAlerts   *rollup.GetBudgetAlertsUseCase
	dueDateAlerts  *rollup.GetDueDateAlertsUseCase
	trends         *rollup.GetTrendsUseCase
	categoryReport *rollup.GetCategoryReportUseCase
}

// NewRollupController creates a new rollup controller instance.
func NewRollupController(
	periods *PeriodResolver,
	budgetAlerts *rollup.GetBudgetAlertsUseCase,
	dueDateAlerts *rollup.GetDueDateAlertsUseCase,
	trends *rollup.GetTrendsUseCase,
	categoryReport *rollup.GetCategoryReportUseCase,
) *RollupController {
	return &RollupController{
		periods:        periods,
		budgetAlerts:   budgetAlerts,
		dueDateAlerts:  dueDateAlerts,
		trends:         trends,
		categoryReport: categoryReport,
	}
}

// BudgetAlerts handles GET /alerts/budget?month=&year= requests.
func (c *RollupController) BudgetAlerts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	alerts, err := c.budgetAlerts.Execute(ctx.Request.Context(), rollup.GetBudgetAlertsInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
	})
	if err != nil {
		c.handleRollupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, alerts)
}

// DueDateAlerts handles GET /alerts/due-dates requests.
func (c *RollupController) DueDateAlerts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	alerts, err := c.dueDateAlerts.Execute(ctx.Request.Context(), rollup.GetDueDateAlertsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleRollupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, alerts)
}

// Trends handles GET /analysis/trends?month=&year= requests.
func (c *RollupController) Trends(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	report, err := c.trends.Execute(ctx.Request.Context(), rollup.GetTrendsInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
	})
	if err != nil {
		c.handleRollupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// CategoryReport handles GET /reports/by-category?month=&year=&type= requests.
func (c *RollupController) CategoryReport(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	rows, err := c.categoryReport.Execute(ctx.Request.Context(), rollup.GetCategoryReportInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
		Kind:   entity.EntryType(ctx.DefaultQuery("type", string(entity.EntryTypeExpense))),
	})
	if err != nil {
		c.handleRollupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

func (c *RollupController) handleRollupError(ctx *gin.Context, err error) {
	var sigErr *domainerror.SignalError
	if errors.As(err, &sigErr) {
		ctx.JSON(getStatusCodeForSignalError(sigErr.Code), dto.ErrorResponse{
			Error: sigErr.Message,
			Code:  string(sigErr.Code),
		})
		return
	}

	internalError(ctx)
}
