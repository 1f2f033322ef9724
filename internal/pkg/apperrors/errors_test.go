package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		err    error
		target error
		text   string
	}{
		{NewResourceNotFoundError("Flight not found"), ErrResourceNotFound, "Flight not found"},
		{NewConflictError("Code already taken"), ErrConflict, "Code already taken"},
		{NewBadRequestError("Missing filter"), ErrBadRequest, "Missing filter"},
		{NewValidationError("Score must not be negative"), ErrValidationFailed, "Score must not be negative"},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("service: %w", tt.err)
		if !errors.Is(wrapped, tt.target) {
			t.Errorf("expected %q to match %v", tt.text, tt.target)
		}
		var custom *CustomError
		if !errors.As(wrapped, &custom) || custom.Error() != tt.text {
			t.Errorf("expected the custom message %q, got %v", tt.text, custom)
		}
	}
}

func TestCustomErrorFallsBackToWrappedText(t *testing.T) {
	if got := (&CustomError{Err: ErrConflict}).Error(); got != "conflict" {
		t.Errorf("expected the sentinel text, got %q", got)
	}
	if got := (&CustomError{}).Error(); got != "unknown error" {
		t.Errorf("expected a placeholder, got %q", got)
	}
}
