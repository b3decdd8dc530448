package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized responses and log fields
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidPoints       = 4002
	CodeInvalidUserID       = 4003
	CodeBotTarget           = 4004
	CodeNotAuthorized       = 4030
	CodeAccountNotFound     = 4040

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeStoreOperation  = 5001
	CodeStoreConnection = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account holds fewer points than a debit requires
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidPoints is returned when a point delta is zero or negative
	ErrInvalidPoints = errors.New("points must be greater than 0")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrAccountNotFound is returned when no account exists for the user ID
	ErrAccountNotFound = errors.New("user not found")

	// ErrNotAuthorized is returned when the acting user is not on the admin allow-list
	ErrNotAuthorized = errors.New("not authorized")

	// ErrBotTarget is returned when a command targets a bot account
	ErrBotTarget = errors.New("target is a bot")

	// ErrStoreConnection is returned when the store cannot be opened
	ErrStoreConnection = errors.New("store connection error")

	// ErrStoreOperation is returned when a storage read or write fails
	ErrStoreOperation = errors.New("store operation failed")

	// ErrDuplicateAccount is returned when an insert collides with an existing account
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountLocked is returned when the row or database is locked by another writer
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrInternalServer is returned for unexpected errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidPoints):
		return CodeInvalidPoints
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrBotTarget):
		return CodeBotTarget
	case errors.Is(err, ErrNotAuthorized):
		return CodeNotAuthorized
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case isStoreError(err):
		return CodeStoreOperation
	case errors.Is(err, ErrStoreConnection):
		return CodeStoreConnection
	case errors.Is(err, ErrStoreOperation):
		return CodeStoreOperation
	default:
		return CodeInternalServer
	}
}

// ValidationError is a normal negative outcome of a pre-flight check.
// Reason is safe to show to the user.
type ValidationError struct {
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"reason":     e.Reason,
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error with a user-facing reason
func NewValidationError(reason string, err error) error {
	return &ValidationError{
		Reason: reason,
		Err:    err,
	}
}

// StoreError describes a failed storage operation on one account
type StoreError struct {
	Operation string
	UserID    int64
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s failed for user %d: %v", e.Operation, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports ErrStoreOperation so callers can test the category
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreOperation
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": CodeStoreOperation,
	}
}

// NewStoreError wraps a storage failure for the given operation and user
func NewStoreError(operation string, userID int64, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// isStoreError reports a runtime storage failure, whatever its cause
func isStoreError(err error) bool {
	var sErr *StoreError
	return errors.As(err, &sErr)
}

// AsValidationError extracts a ValidationError from the chain
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// IsValidationError checks if the error is a pre-flight validation failure
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsStoreError checks if the error comes from the storage layer
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreOperation) || errors.Is(err, ErrStoreConnection)
}
