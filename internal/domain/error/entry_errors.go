// Package error defines domain-specific errors for the Finance Signals application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryAmount is returned when the amount is not positive.
	ErrInvalidEntryAmount = errors.New("amount must be greater than zero")

	// ErrInvalidEntryType is returned when the type is not income or expense.
	ErrInvalidEntryType = errors.New("type must be income or expense")

	// ErrEntryDescriptionRequired is returned when the description is empty.
	ErrEntryDescriptionRequired = errors.New("description is required")

	// ErrEntryAlreadyPaid is returned when paying an entry that is already paid.
	ErrEntryAlreadyPaid = errors.New("entry already paid")

	// ErrEntryNotPayable is returned when paying an income entry.
	ErrEntryNotPayable = errors.New("only expense entries can be paid")

	// ErrEntryCategoryInvalid is returned when the category is not one of the user's
	// categories of the entry's type.
	ErrEntryCategoryInvalid = errors.New("category does not match the entry type")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryAmount   EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryType     EntryErrorCode = "ENT-010002"
	ErrCodeMissingEntryFields   EntryErrorCode = "ENT-010003"
	ErrCodeEntryNotFound        EntryErrorCode = "ENT-010004"
	ErrCodeEntryCategoryInvalid EntryErrorCode = "ENT-010005"
	ErrCodeEntryInvalidPeriod   EntryErrorCode = "ENT-010006"

	// State errors (02XXXX)
	ErrCodeEntryAlreadyPaid EntryErrorCode = "ENT-020001"
	ErrCodeEntryNotPayable  EntryErrorCode = "ENT-020002"

	// Internal errors (99XXXX)
	ErrCodeEntryInternalError EntryErrorCode = "ENT-990001"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
