package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/usecase/investment"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	CategoryID     *string          `json:"category_id"`
	Description    string           `json:"description"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
	Contribution   *decimal.Decimal `json:"contribution,omitempty"`
	Dividends      *decimal.Decimal `json:"dividends,omitempty"`
	Withdrawal     *decimal.Decimal `json:"withdrawal,omitempty"`
	Month          int              `json:"month"`
	Year           int              `json:"year"`
}

// UpdateInvestmentRequest represents the request body for investment update.
type UpdateInvestmentRequest struct {
	CategoryID     *string          `json:"category_id,omitempty"`
	Description    *string          `json:"description,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
	Contribution   *decimal.Decimal `json:"contribution,omitempty"`
	Dividends      *decimal.Decimal `json:"dividends,omitempty"`
	Withdrawal     *decimal.Decimal `json:"withdrawal,omitempty"`
}

// Amounts converts the request money fields into use case amounts.
func (r CreateInvestmentRequest) Amounts() investment.Amounts {
	return investment.Amounts{
		InitialBalance: r.InitialBalance,
		Contribution:   r.Contribution,
		Dividends:      r.Dividends,
		Withdrawal:     r.Withdrawal,
	}
}

// Amounts converts the request money fields into use case amounts.
func (r UpdateInvestmentRequest) Amounts() investment.Amounts {
	return investment.Amounts{
		InitialBalance: r.InitialBalance,
		Contribution:   r.Contribution,
		Dividends:      r.Dividends,
		Withdrawal:     r.Withdrawal,
	}
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID             string          `json:"id"`
	CategoryID     *string         `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	Description    string          `json:"description"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Contribution   decimal.Decimal `json:"contribution"`
	Dividends      decimal.Decimal `json:"dividends"`
	Withdrawal     decimal.Decimal `json:"withdrawal"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InvestmentSummaryResponse represents the totals of an investment list.
type InvestmentSummaryResponse struct {
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalDividends     decimal.Decimal `json:"total_dividends"`
	TotalWithdrawals   decimal.Decimal `json:"total_withdrawals"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Month       int                       `json:"month"`
	Year        int                       `json:"year"`
	Investments []InvestmentResponse      `json:"investments"`
	Summary     InvestmentSummaryResponse `json:"summary"`
}

// ToInvestmentResponse converts an investment and its category to an InvestmentResponse DTO.
func ToInvestmentResponse(item *entity.InvestmentWithCategory) InvestmentResponse {
	inv := item.Investment
	response := InvestmentResponse{
		ID:             inv.ID.String(),
		CategoryName:   item.CategoryName(),
		Description:    inv.Description,
		InitialBalance: inv.InitialBalance,
		Contribution:   inv.Contribution,
		Dividends:      inv.Dividends,
		Withdrawal:     inv.Withdrawal,
		FinalBalance:   inv.FinalBalance(),
		Month:          inv.Month,
		Year:           inv.Year,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	if item.Category != nil && inv.CategoryID != nil {
		id := inv.CategoryID.String()
		response.CategoryID = &id
	}
	return response
}

// ToInvestmentListResponse converts the list output to an InvestmentListResponse.
func ToInvestmentListResponse(output *investment.ListInvestmentsOutput) InvestmentListResponse {
	response := InvestmentListResponse{
		Month:       output.Period.Month,
		Year:        output.Period.Year,
		Investments: make([]InvestmentResponse, len(output.Investments)),
		Summary: InvestmentSummaryResponse{
			TotalContributions: output.Summary.TotalContributions,
			TotalDividends:     output.Summary.TotalDividends,
			TotalWithdrawals:   output.Summary.TotalWithdrawals,
			TotalBalance:       output.Summary.TotalBalance,
		},
	}
	for i, item := range output.Investments {
		response.Investments[i] = ToInvestmentResponse(item)
	}
	return response
}
