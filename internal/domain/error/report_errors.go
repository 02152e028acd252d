// Package error defines domain-specific errors for the finance tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPeriod is returned when the period selector is not weekly, monthly or yearly.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrMissingAnchorDate is returned when no anchor date is provided.
	ErrMissingAnchorDate = errors.New("anchor date is required")

	// ErrInvalidAnchorDate is returned when the anchor date cannot be parsed.
	ErrInvalidAnchorDate = errors.New("invalid anchor date")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeInvalidPeriod     ReportErrorCode = "RPT-010001"
	ErrCodeMissingAnchorDate ReportErrorCode = "RPT-010002"
	ErrCodeInvalidAnchorDate ReportErrorCode = "RPT-010003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
