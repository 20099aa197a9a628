package testutil

import (
	"errors"
	"testing"

	apperrors "orbit/internal/errors"
)

// AssertAppError fails the test unless err is an *AppError with the given
// code. It returns the AppError for further checks.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertAppErrorMessage checks both the code and the client-facing message.
func AssertAppErrorMessage(t *testing.T, err error, expectedCode, expectedMessage string) {
	t.Helper()

	if appErr := AssertAppError(t, err, expectedCode); appErr.Message != expectedMessage {
		t.Errorf("expected message %q, got %q", expectedMessage, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
