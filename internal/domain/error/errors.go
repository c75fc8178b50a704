package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInsufficientFunds  = 4002
	CodeInvalidAmount      = 4003
	CodeInvalidAddress     = 4004
	CodeInvalidDirection   = 4005
	CodeAmountOverflow     = 4006
	CodeInvalidSyncPayload = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePersistence    = 5001
	CodeSync           = 5020
)

// Base error types
var (
	// ErrValidation is the category for malformed input to an append or payment operation
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds is returned when a debit exceeds the available balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPersistence is the category for local store read/write failures
	ErrPersistence = errors.New("persistence failure")

	// ErrSync is the category for failed remote round-trips
	ErrSync = errors.New("sync failed")

	// ErrInvalidAmount is returned when an amount is not a positive whole number
	ErrInvalidAmount = errors.New("amount must be a positive whole number")

	// ErrInvalidAddress is returned when a counterparty address is not of the form handle@provider
	ErrInvalidAddress = errors.New("counterparty address must look like handle@provider")

	// ErrInvalidName is returned when a counterparty name is empty
	ErrInvalidName = errors.New("counterparty name cannot be empty")

	// ErrInvalidDirection is returned when a direction is neither sent nor received
	ErrInvalidDirection = errors.New("direction must be sent or received")

	// ErrNegativeBalance is returned when a balance override would be negative
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrAmountOverflow is returned when a credit would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidSyncPayload is returned when the remote mirror answers with data that fails validation
	ErrInvalidSyncPayload = errors.New("invalid sync payload")

	// ErrSyncTimeout is returned when the remote round-trip exceeds the configured timeout
	ErrSyncTimeout = errors.New("sync timed out")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the mirror database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, ErrInvalidDirection):
		return CodeInvalidDirection
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidSyncPayload):
		return CodeInvalidSyncPayload
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	case errors.Is(err, ErrSync):
		return CodeSync
	default:
		return CodeInternalServer
	}
}

// ValidationError describes malformed input rejected before any state change
type ValidationError struct {
	Field  string
	Value  any
	Reason error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying reason
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Is reports ErrValidation as a match so callers can test the category
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"value":      e.Value,
		"error":      e.Reason.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a new validation error for a field
func NewValidationError(field string, value any, reason error) error {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %d, available %d", e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(requested, available int64) error {
	return &InsufficientFundsError{
		Requested: requested,
		Available: available,
	}
}

// PersistenceError wraps a local store failure
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistence %s of %q failed: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "persistence_error",
		"op":         e.Op,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewPersistenceError creates a persistence error for an operation on a key
func NewPersistenceError(op, key string, err error) error {
	return &PersistenceError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// SyncError wraps a failed sync cycle
type SyncError struct {
	Phase string
	Err   error
}

// Error implements the error interface for SyncError
func (e *SyncError) Error() string {
	return fmt.Sprintf("sync failed during %s: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error
func (e *SyncError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrSync
func (e *SyncError) Is(target error) bool {
	return target == ErrSync
}

// LogFields returns a map of fields for structured logging
func (e *SyncError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sync_error",
		"phase":      e.Phase,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewSyncError creates a sync error for the given cycle phase
func NewSyncError(phase string, err error) error {
	return &SyncError{
		Phase: phase,
		Err:   err,
	}
}

// IsValidationError checks if the error is caused by malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientFundsError checks if the error is a rejected debit
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsPersistenceError checks if the error comes from the local store
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsSyncError checks if the error comes from a sync cycle
func IsSyncError(err error) bool {
	return errors.Is(err, ErrSync)
}
