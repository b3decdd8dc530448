package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidPoints.Error() != "points must be greater than 0" {
		t.Errorf("ErrInvalidPoints has unexpected message: %s", ErrInvalidPoints.Error())
	}
	if ErrAccountNotFound.Error() != "user not found" {
		t.Errorf("ErrAccountNotFound has unexpected message: %s", ErrAccountNotFound.Error())
	}
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidPoints", ErrInvalidPoints, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"BotTarget", ErrBotTarget, 4004},
		{"NotAuthorized", ErrNotAuthorized, 4030},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"StoreOperation", ErrStoreOperation, 5001},
		{"StoreConnection", ErrStoreConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"ValidationError", NewValidationError("insufficient balance", ErrInsufficientBalance), 4001},
		{"StoreError", NewStoreError("credit", 42, errors.New("disk I/O error")), 5001},
		{"StoreErrorWithConnectionCause", NewStoreError("credit", 42, fmt.Errorf("%w: commit transaction: connection reset", ErrStoreConnection)), 5001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("user not found", ErrAccountNotFound)

	if err.Error() != "user not found" {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), "user not found")
	}

	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("errors.Is(err, ErrAccountNotFound) = false, want true")
	}

	vErr, ok := AsValidationError(fmt.Errorf("remove points: %w", err))
	if !ok {
		t.Fatalf("AsValidationError did not find the wrapped validation error")
	}
	if vErr.Reason != "user not found" {
		t.Errorf("Reason = %s, want %s", vErr.Reason, "user not found")
	}

	fields := vErr.LogFields()
	if fields["error_code"] != CodeAccountNotFound {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeAccountNotFound)
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("database disk image is malformed")
	err := NewStoreError("debit", 7, cause)

	expectedMsg := "debit failed for user 7: database disk image is malformed"
	if err.Error() != expectedMsg {
		t.Errorf("StoreError.Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrStoreOperation) {
		t.Errorf("errors.Is(err, ErrStoreOperation) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !IsStoreError(err) {
		t.Errorf("IsStoreError(err) = false, want true")
	}
	if IsValidationError(err) {
		t.Errorf("IsValidationError(err) = true, want false")
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsAccountNotFoundError(fmt.Errorf("lookup: %w", ErrAccountNotFound)) {
		t.Errorf("IsAccountNotFoundError should match wrapped ErrAccountNotFound")
	}
	if !IsInsufficientBalanceError(NewValidationError("insufficient balance", ErrInsufficientBalance)) {
		t.Errorf("IsInsufficientBalanceError should match a validation error wrapping ErrInsufficientBalance")
	}
	if IsStoreError(ErrAccountNotFound) {
		t.Errorf("IsStoreError should not match ErrAccountNotFound")
	}
}
