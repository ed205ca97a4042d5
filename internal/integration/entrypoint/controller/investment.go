package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/signals/internal/application/usecase/investment"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	periods       *PeriodResolver
	listUseCase   *investment.ListInvestmentsUseCase
	createUseCase *investment.CreateInvestmentUseCase
	updateUseCase *investment.UpdateInvestmentUseCase
	deleteUseCase *investment.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	periods *PeriodResolver,
	listUseCase *investment.ListInvestmentsUseCase,
	createUseCase *investment.CreateInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		periods:       periods,
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /investments?month=&year= requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{
		UserID: userID,
		Period: c.periods.FromQuery(ctx),
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output))
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}
	categoryID, err := optionalID(req.CategoryID)
	if err != nil {
		c.invalidCategoryID(ctx)
		return
	}

	item, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: req.Description,
		Period:      entity.NewPeriod(req.Month, req.Year),
		Amounts:     req.Amounts(),
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(item))
}

// Update handles PATCH /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	investmentID, ok := pathID(ctx, "investment")
	if !ok {
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	categoryID, err := optionalID(req.CategoryID)
	if err != nil {
		c.invalidCategoryID(ctx)
		return
	}

	item, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
		CategoryID:   categoryID,
		Description:  req.Description,
		Amounts:      req.Amounts(),
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(item))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	investmentID, ok := pathID(ctx, "investment")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), investmentID, userID); err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *InvestmentController) invalidCategoryID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid category ID format",
		Code:  string(domainerror.ErrCodeInvestmentCategoryInvalid),
	})
}

func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvestmentError
	if errors.As(err, &invErr) {
		status := http.StatusInternalServerError
		switch invErr.Code {
		case domainerror.ErrCodeInvestmentNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeInvestmentCategoryInvalid,
			domainerror.ErrCodeNegativeInvestmentAmount,
			domainerror.ErrCodeInvestmentInvalidPeriod,
			domainerror.ErrCodeMissingInvestmentFields:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	internalError(ctx)
}
