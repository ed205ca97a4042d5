package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/usecase/budget"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	periods       *PeriodResolver
	listUseCase   *budget.ListBudgetsUseCase
	upsertUseCase *budget.UpsertBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	periods *PeriodResolver,
	listUseCase *budget.ListBudgetsUseCase,
	upsertUseCase *budget.UpsertBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		periods:       periods,
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets?month=&year= requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	items, err := c.listUseCase.Execute(ctx.Request.Context(), userID, c.periods.FromQuery(ctx))
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(items))
}

// Upsert handles PUT /budgets requests.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBudgetCategoryInvalid),
		})
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
			Code:  string(domainerror.ErrCodeBudgetCategoryInvalid),
		})
		return
	}

	item, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Planned:    req.Planned,
		Period:     entity.NewPeriod(req.Month, req.Year),
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(item))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetID, userID); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		status := http.StatusInternalServerError
		switch budgetErr.Code {
		case domainerror.ErrCodeBudgetNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNegativePlannedAmount,
			domainerror.ErrCodeBudgetInvalidPeriod,
			domainerror.ErrCodeBudgetCategoryInvalid:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	internalError(ctx)
}
