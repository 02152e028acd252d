// Package error defines domain-specific errors for the finance tracker application.
package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a record is not found in the system.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordType is returned when the record type is outside the known enumeration.
	ErrInvalidRecordType = errors.New("invalid record type")

	// ErrInvalidRecordDate is returned when the record date is not a valid YYYY-MM-DD date.
	ErrInvalidRecordDate = errors.New("invalid record date")

	// ErrNegativeRecordAmount is returned when the record amount is negative.
	ErrNegativeRecordAmount = errors.New("record amount must not be negative")

	// ErrLabelTooLong is returned when the record label exceeds the maximum length.
	ErrLabelTooLong = errors.New("label too long")

	// ErrCategoryTooLong is returned when the record category exceeds the maximum length.
	ErrCategoryTooLong = errors.New("category too long")

	// ErrEmptyRecordUpdate is returned when an update request carries no fields.
	ErrEmptyRecordUpdate = errors.New("no fields to update")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecordType     RecordErrorCode = "REC-010001"
	ErrCodeInvalidRecordDate     RecordErrorCode = "REC-010002"
	ErrCodeNegativeRecordAmount  RecordErrorCode = "REC-010003"
	ErrCodeRecordNotFound        RecordErrorCode = "REC-010004"
	ErrCodeLabelTooLong          RecordErrorCode = "REC-010005"
	ErrCodeCategoryTooLong       RecordErrorCode = "REC-010006"
	ErrCodeMissingRecordFields   RecordErrorCode = "REC-010007"
	ErrCodeEmptyRecordUpdate     RecordErrorCode = "REC-010008"
	ErrCodeInvalidRecordIDFormat RecordErrorCode = "REC-010009"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
