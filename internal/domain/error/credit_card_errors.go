// Package error defines domain-specific errors for the Finance Signals application.
package error

import "errors"

// Credit card domain errors.
var (
	ErrCreditCardNotFound    = errors.New("credit card not found")
	ErrCreditCardNameInvalid = errors.New("credit card name must be between 1 and 50 characters")
	ErrCreditCardLimit       = errors.New("credit card limit must not be negative")
	ErrInvalidBillingDay     = errors.New("closing and due days must be between 1 and 31")
)

// CreditCardErrorCode defines error codes for credit card errors.
// Format: CCD-XXYYYY where XX is category and YYYY is specific error.
type CreditCardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCreditCardNameInvalid CreditCardErrorCode = "CCD-010001"
	ErrCodeCreditCardLimit       CreditCardErrorCode = "CCD-010002"
	ErrCodeInvalidBillingDay     CreditCardErrorCode = "CCD-010003"
	ErrCodeCreditCardNotFound    CreditCardErrorCode = "CCD-010004"

	// Internal errors (99XXXX)
	ErrCodeCreditCardInternalError CreditCardErrorCode = "CCD-990001"
)

// CreditCardError represents a credit card error with code and message.
type CreditCardError struct {
	Code    CreditCardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CreditCardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CreditCardError) Unwrap() error {
	return e.Err
}

// NewCreditCardError creates a new CreditCardError with the given code and message.
func NewCreditCardError(code CreditCardErrorCode, message string, err error) *CreditCardError {
	return &CreditCardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
