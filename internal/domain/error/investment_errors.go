// Package error defines domain-specific errors for the Finance Signals application.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvestmentCategoryInvalid is returned when the category is not an investment category of the user.
	ErrInvestmentCategoryInvalid = errors.New("category must be an investment category")

	// ErrNegativeInvestmentAmount is returned when a balance or movement is negative.
	ErrNegativeInvestmentAmount = errors.New("investment amounts must not be negative")

	// ErrInvalidPeriod is returned when month or year is out of range.
	ErrInvalidPeriod = errors.New("invalid month or year")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvestmentCategoryInvalid InvestmentErrorCode = "INV-010001"
	ErrCodeNegativeInvestmentAmount  InvestmentErrorCode = "INV-010002"
	ErrCodeInvestmentInvalidPeriod   InvestmentErrorCode = "INV-010003"
	ErrCodeInvestmentNotFound        InvestmentErrorCode = "INV-010004"
	ErrCodeMissingInvestmentFields   InvestmentErrorCode = "INV-010005"

	// Internal errors (99XXXX)
	ErrCodeInvestmentInternalError InvestmentErrorCode = "INV-990001"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
