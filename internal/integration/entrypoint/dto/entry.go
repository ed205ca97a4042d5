package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/usecase/entry"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CreateEntryRequest represents the request body for entry creation.
// Dates use the YYYY-MM-DD format.
type CreateEntryRequest struct {
	CategoryID  *string         `json:"category_id"`
	Description string          `json:"description" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
	DueDate     *string         `json:"due_date,omitempty"`
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// EntryResponse represents a single entry in API responses.
type EntryResponse struct {
	ID           string          `json:"id"`
	CategoryID   *string         `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Description  string          `json:"description"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	DueDate      *string         `json:"due_date,omitempty"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryListResponse represents the response for listing entries of a period.
type EntryListResponse struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Entries      []EntryResponse `json:"entries"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// ToEntryResponse converts an entry and its optional category to an EntryResponse DTO.
func ToEntryResponse(e *entity.Entry, category *entity.Category) EntryResponse {
	response := EntryResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Type:        string(e.Type),
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		PaidAt:      e.PaidAt,
		CreatedAt:   e.CreatedAt,
	}
	if e.CategoryID != nil {
		id := e.CategoryID.String()
		response.CategoryID = &id
	}
	if category != nil {
		response.CategoryName = category.Name
	}
	if e.DueDate != nil {
		due := e.DueDate.Format(dateLayout)
		response.DueDate = &due
	}
	return response
}

// ToEntryListResponse converts the list output to an EntryListResponse.
func ToEntryListResponse(output *entry.ListEntriesOutput) EntryListResponse {
	response := EntryListResponse{
		Month:        output.Period.Month,
		Year:         output.Period.Year,
		Entries:      make([]EntryResponse, len(output.Entries)),
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
	}
	for i, item := range output.Entries {
		response.Entries[i] = ToEntryResponse(item.Entry, item.Category)
	}
	return response
}
