// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for credit card creation.
type CreateCreditCardRequest struct {
	Name       string          `json:"name" binding:"required"`
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closing_day"`
	DueDay     int             `json:"due_day"`
}

// UpdateCreditCardRequest represents the request body for credit card update.
type UpdateCreditCardRequest struct {
	Name       *string          `json:"name,omitempty"`
	Limit      *decimal.Decimal `json:"limit,omitempty"`
	ClosingDay *int             `json:"closing_day,omitempty"`
	DueDay     *int             `json:"due_day,omitempty"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closing_day"`
	DueDay     int             `json:"due_day"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CreditCardListResponse represents the response for listing credit cards.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:         card.ID.String(),
		Name:       card.Name,
		Limit:      card.Limit,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}

// ToCreditCardListResponse converts a list of credit cards to a CreditCardListResponse.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	response := CreditCardListResponse{
		CreditCards: make([]CreditCardResponse, len(cards)),
	}
	for i, card := range cards {
		response.CreditCards[i] = ToCreditCardResponse(card)
	}
	return response
}
