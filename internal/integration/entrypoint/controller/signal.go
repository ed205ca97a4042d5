package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/signals/internal/application/usecase/signal"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
)

// SignalController handles the alert board, trend summary and category report endpoints.
type SignalController struct {
	periods        *PeriodResolver
	boardUseCase   *signal.GetAlertBoardUseCase
	dismissUseCase *signal.DismissAlertUseCase
	trendsUseCase  *signal.GetTrendSummaryUseCase
	reportUseCase  *signal.GetCategoryReportUseCase
}

// NewSignalController creates a new signal controller instance.
func NewSignalController(
	periods *PeriodResolver,
	boardUseCase *signal.GetAlertBoardUseCase,
	dismissUseCase *signal.DismissAlertUseCase,
	trendsUseCase *signal.GetTrendSummaryUseCase,
	reportUseCase *signal.GetCategoryReportUseCase,
) *SignalController {
	return &SignalController{
		periods:        periods,
		boardUseCase:   boardUseCase,
		dismissUseCase: dismissUseCase,
		trendsUseCase:  trendsUseCase,
		reportUseCase:  reportUseCase,
	}
}

// Alerts handles GET /signals/alerts?month=&year= requests.
func (c *SignalController) Alerts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.boardUseCase.Execute(ctx.Request.Context(), signal.GetAlertBoardInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
	})
	if err != nil {
		c.handleSignalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Dismiss handles POST /signals/alerts/:id/dismiss?month=&year= requests.
func (c *SignalController) Dismiss(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	err := c.dismissUseCase.Execute(ctx.Request.Context(), signal.DismissAlertInput{
		UserID:  userID,
		Period:  c.periods.FromQuery(ctx),
		AlertID: ctx.Param("id"),
	})
	if err != nil {
		c.handleSignalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Trends handles GET /signals/trends?month=&year= requests.
func (c *SignalController) Trends(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), signal.GetTrendSummaryInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
	})
	if err != nil {
		c.handleSignalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Reports handles GET /signals/reports?month=&year= requests.
func (c *SignalController) Reports(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), signal.GetCategoryReportInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
	})
	if err != nil {
		c.handleSignalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

func (c *SignalController) handleSignalError(ctx *gin.Context, err error) {
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

// getStatusCodeForSignalError maps signal error codes to HTTP status codes.
// Malformed rollups are the upstream's fault and answer 502.
func getStatusCodeForSignalError(code domainerror.SignalErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidReportType,
		domainerror.ErrCodeMissingAlertTarget:
		return http.StatusBadRequest
	case domainerror.ErrCodeRefreshSuperseded:
		return http.StatusConflict
	case domainerror.ErrCodeMissingAlertID,
		domainerror.ErrCodeInvalidAlertLevel,
		domainerror.ErrCodeInvalidDueType,
		domainerror.ErrCodeNegativePlanned,
		domainerror.ErrCodeDuplicateAlertID,
		domainerror.ErrCodeRollupUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
