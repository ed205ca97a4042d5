// Package error defines domain-specific errors for the Finance Signals application.
package error

import "errors"

// Signal domain errors.
var (
	// ErrMissingAlertID is returned when a budget alert has no category_id or a due alert no expense_id.
	ErrMissingAlertID = errors.New("alert identifier is required")

	// ErrInvalidAlertLevel is returned when an alert level is not danger, warning or info.
	ErrInvalidAlertLevel = errors.New("invalid alert level")

	// ErrInvalidDueType is returned when a due alert type is not overdue or upcoming.
	ErrInvalidDueType = errors.New("invalid due alert type")

	// ErrNegativePlanned is returned when a budget alert carries a negative planned amount.
	ErrNegativePlanned = errors.New("planned amount must not be negative")

	// ErrDuplicateAlertID is returned when two alerts synthesize the same id.
	ErrDuplicateAlertID = errors.New("duplicate alert id")

	// ErrInvalidSignalPeriod is returned when month or year is out of range.
	ErrInvalidSignalPeriod = errors.New("invalid month or year")

	// ErrInvalidReportType is returned when a report type is not income or expense.
	ErrInvalidReportType = errors.New("report type must be income or expense")

	// ErrRefreshSuperseded is returned when a newer refresh replaced the one in flight.
	ErrRefreshSuperseded = errors.New("refresh superseded by a newer request")

	// ErrRollupUnavailable is returned when the rollup source cannot be reached.
	ErrRollupUnavailable = errors.New("rollup source unavailable")
)

// SignalErrorCode defines error codes for signal errors.
// Format: SIG-XXYYYY where XX is category and YYYY is specific error.
type SignalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingAlertID     SignalErrorCode = "SIG-010001"
	ErrCodeInvalidAlertLevel  SignalErrorCode = "SIG-010002"
	ErrCodeInvalidDueType     SignalErrorCode = "SIG-010003"
	ErrCodeNegativePlanned    SignalErrorCode = "SIG-010004"
	ErrCodeDuplicateAlertID   SignalErrorCode = "SIG-010005"
	ErrCodeInvalidPeriod      SignalErrorCode = "SIG-010006"
	ErrCodeInvalidReportType  SignalErrorCode = "SIG-010007"
	ErrCodeMissingAlertTarget SignalErrorCode = "SIG-010008"

	// Concurrency errors (02XXXX)
	ErrCodeRefreshSuperseded SignalErrorCode = "SIG-020001"

	// Upstream errors (03XXXX)
	ErrCodeRollupUnavailable SignalErrorCode = "SIG-030001"

	// Internal errors (99XXXX)
	ErrCodeSignalInternalError SignalErrorCode = "SIG-990001"
)

// SignalError represents a signal evaluation error with code and message.
type SignalError struct {
	Code    SignalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SignalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SignalError) Unwrap() error {
	return e.Err
}

// NewSignalError creates a new SignalError with the given code and message.
func NewSignalError(code SignalErrorCode, message string, err error) *SignalError {
	return &SignalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
