package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/signals/internal/application/usecase/entry"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
)

// EntryController handles income and expense entry endpoints.
type EntryController struct {
	periods       *PeriodResolver
	listUseCase   *entry.ListEntriesUseCase
	createUseCase *entry.CreateEntryUseCase
	payUseCase    *entry.PayEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	periods *PeriodResolver,
	listUseCase *entry.ListEntriesUseCase,
	createUseCase *entry.CreateEntryUseCase,
	payUseCase *entry.PayEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		periods:       periods,
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		payUseCase:    payUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /entries?month=&year= requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), userID, c.periods.FromQuery(ctx))
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output))
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, "Invalid request body")
		return
	}

	categoryID, err := optionalID(req.CategoryID)
	if err != nil {
		c.badRequest(ctx, "Invalid category ID format")
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.badRequest(ctx, "date must use the YYYY-MM-DD format")
		return
	}
	input := entry.CreateEntryInput{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: req.Description,
		Type:        entity.EntryType(req.Type),
		Amount:      req.Amount,
		Date:        date,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			c.badRequest(ctx, "due_date must use the YYYY-MM-DD format")
			return
		}
		input.DueDate = &dueDate
	}

	item, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(item.Entry, item.Category))
}

// Pay handles POST /entries/:id/pay requests.
func (c *EntryController) Pay(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "entry")
	if !ok {
		return
	}

	paid, err := c.payUseCase.Execute(ctx.Request.Context(), entryID, userID)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(paid, nil))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "entry")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entryID, userID); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *EntryController) badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeMissingEntryFields),
	})
}

func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		status := http.StatusInternalServerError
		switch entryErr.Code {
		case domainerror.ErrCodeEntryNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeEntryAlreadyPaid:
			status = http.StatusConflict
		case domainerror.ErrCodeEntryNotPayable,
			domainerror.ErrCodeInvalidEntryAmount,
			domainerror.ErrCodeInvalidEntryType,
			domainerror.ErrCodeMissingEntryFields,
			domainerror.ErrCodeEntryCategoryInvalid,
			domainerror.ErrCodeEntryInvalidPeriod:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	internalError(ctx)
}
