package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a category's planned amount.
type UpsertBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required"`
	Planned    decimal.Decimal `json:"planned"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CategoryType string          `json:"category_type"`
	Planned      decimal.Decimal `json:"planned"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget and its category to a BudgetResponse DTO.
func ToBudgetResponse(item *entity.BudgetWithCategory) BudgetResponse {
	response := BudgetResponse{
		ID:         item.Budget.ID.String(),
		CategoryID: item.Budget.CategoryID.String(),
		Planned:    item.Budget.Planned,
		Month:      item.Budget.Month,
		Year:       item.Budget.Year,
		UpdatedAt:  item.Budget.UpdatedAt,
	}
	if item.Category != nil {
		response.CategoryName = item.Category.Name
		response.CategoryType = string(item.Category.Type)
	}
	return response
}

// ToBudgetListResponse converts a list of budgets to a BudgetListResponse.
func ToBudgetListResponse(items []*entity.BudgetWithCategory) BudgetListResponse {
	response := BudgetListResponse{
		Budgets: make([]BudgetResponse, len(items)),
	}
	for i, item := range items {
		response.Budgets[i] = ToBudgetResponse(item)
	}
	return response
}
