package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	creditcard "github.com/finance-tracker/signals/internal/application/usecase/credit_card"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	listUseCase   *creditcard.ListCreditCardsUseCase
	createUseCase *creditcard.CreateCreditCardUseCase
	updateUseCase *creditcard.UpdateCreditCardUseCase
	deleteUseCase *creditcard.DeleteCreditCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	listUseCase *creditcard.ListCreditCardsUseCase,
	createUseCase *creditcard.CreateCreditCardUseCase,
	updateUseCase *creditcard.UpdateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	cards, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(cards))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCreditCardNameInvalid),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCreditCardInput{
		UserID:     userID,
		Name:       req.Name,
		Limit:      req.Limit,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	})
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	cardID, ok := pathID(ctx, "credit card")
	if !ok {
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	card, err := c.updateUseCase.Execute(ctx.Request.Context(), creditcard.UpdateCreditCardInput{
		CardID:     cardID,
		UserID:     userID,
		Name:       req.Name,
		Limit:      req.Limit,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	})
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	cardID, ok := pathID(ctx, "credit card")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), cardID, userID); err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *CreditCardController) handleCreditCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CreditCardError
	if errors.As(err, &cardErr) {
		status := http.StatusInternalServerError
		switch cardErr.Code {
		case domainerror.ErrCodeCreditCardNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeCreditCardNameInvalid,
			domainerror.ErrCodeCreditCardLimit,
			domainerror.ErrCodeInvalidBillingDay:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	internalError(ctx)
}
