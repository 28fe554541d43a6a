// Package error defines domain-specific errors for the bookkeeping ledger.
package error

import "errors"

// Ledger error taxonomy. Every storage failure handed to the HTTP layer
// matches exactly one of these with errors.Is.
var (
	// ErrValidation is returned when a write payload is malformed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a required row is absent.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned on unique, foreign-key, not-null or check violations.
	ErrConflict = errors.New("constraint violation")

	// ErrInternal is returned for connectivity loss, timeouts and unclassified engine errors.
	ErrInternal = errors.New("internal storage error")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBody      LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidDate      LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidPriority  LedgerErrorCode = "LDG-010004"
	ErrCodeInvalidPathID    LedgerErrorCode = "LDG-010006"
	ErrCodeEmptyBatch       LedgerErrorCode = "LDG-010007"

	// Storage errors (02XXXX)
	ErrCodeNotFound LedgerErrorCode = "LDG-020001"
	ErrCodeConflict LedgerErrorCode = "LDG-020002"

	// Auth errors (03XXXX)
	ErrCodeMissingToken LedgerErrorCode = "LDG-030001"
	ErrCodeInvalidToken LedgerErrorCode = "LDG-030002"

	// Internal errors (99XXXX)
	ErrCodeInternal      LedgerErrorCode = "LDG-990001"
	ErrCodePoolExhausted LedgerErrorCode = "LDG-990002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a LedgerError that matches ErrValidation.
func NewValidationError(code LedgerErrorCode, message string) *LedgerError {
	return NewLedgerError(code, message, ErrValidation)
}
