package error

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrValidation.Error() != "validation failed" {
		t.Errorf("ErrValidation has unexpected message: %s", ErrValidation.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, 4002},
		{"InvalidAmount", ErrInvalidAmount, 4003},
		{"InvalidAddress", ErrInvalidAddress, 4004},
		{"ValidationWrappingAddress", NewValidationError("counterpartyAddress", "bob", ErrInvalidAddress), 4004},
		{"ValidationWrappingName", NewValidationError("counterpartyName", "", ErrInvalidName), 4001},
		{"Persistence", NewPersistenceError("write", "balance", errors.New("disk full")), 5001},
		{"Sync", NewSyncError("submit", errors.New("connection refused")), 5020},
		{"SyncInvalidPayload", NewSyncError("validate", ErrInvalidSyncPayload), 4220},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAmount), 4003},
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
	err := NewValidationError("amount", int64(-5), ErrInvalidAmount)

	expected := "invalid amount -5: amount must be a positive whole number"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("errors.Is(err, ErrInvalidAmount) = false, want true")
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError(err) = false, want true")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("errors.As(err, *ValidationError) = false, want true")
	}
	fields := ve.LogFields()
	if fields["field"] != "amount" || fields["error_code"] != CodeInvalidAmount {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(5000, 700)

	expected := "insufficient funds: requested 5000, available 700"
	if err.Error() != expected {
		t.Errorf("InsufficientFundsError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsInsufficientFundsError(err) {
		t.Errorf("IsInsufficientFundsError(err) = false, want true")
	}
	if IsValidationError(err) {
		t.Errorf("IsValidationError(err) = true, want false")
	}

	var ife *InsufficientFundsError
	if !errors.As(err, &ife) {
		t.Fatalf("errors.As(err, *InsufficientFundsError) = false, want true")
	}
	if ife.LogFields()["available"] != int64(700) {
		t.Errorf("unexpected log fields: %v", ife.LogFields())
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewPersistenceError("write", "transactions", cause)

	expected := `persistence write of "transactions" failed: disk full`
	if err.Error() != expected {
		t.Errorf("PersistenceError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !IsPersistenceError(err) {
		t.Errorf("IsPersistenceError(err) = false, want true")
	}

	noKey := NewPersistenceError("batch write", "", cause)
	if noKey.Error() != "persistence batch write failed: disk full" {
		t.Errorf("unexpected message without key: %s", noKey.Error())
	}
}

func TestSyncError(t *testing.T) {
	err := NewSyncError("submit", context.DeadlineExceeded)

	expected := "sync failed during submit: context deadline exceeded"
	if err.Error() != expected {
		t.Errorf("SyncError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsSyncError(err) {
		t.Errorf("IsSyncError(err) = false, want true")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(err, context.DeadlineExceeded) = false, want true")
	}
	if IsPersistenceError(err) {
		t.Errorf("IsPersistenceError(err) = true, want false")
	}

	nested := NewSyncError("apply", NewPersistenceError("write", "lastSyncTime", errors.New("io")))
	if !IsSyncError(nested) || !IsPersistenceError(nested) {
		t.Errorf("nested sync error should match both categories")
	}
}
