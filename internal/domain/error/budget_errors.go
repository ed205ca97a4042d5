// Package error defines domain-specific errors for the Finance Signals application.
package error

import "errors"

// Budget domain errors.
var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrNegativePlannedAmount = errors.New("planned amount must not be negative")
	ErrBudgetCategoryInvalid = errors.New("budget category must be an expense or income category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativePlannedAmount BudgetErrorCode = "BGT-010001"
	ErrCodeBudgetInvalidPeriod   BudgetErrorCode = "BGT-010002"
	ErrCodeBudgetCategoryInvalid BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010004"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BGT-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
