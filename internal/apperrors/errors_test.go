package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("business_id", "is required"), KindValidation},
		{"wrapped validation", fmt.Errorf("create: %w", NewValidationError("x", "y")), KindValidation},
		{"invalid state", &InvalidStateError{Entity: "renewal", ID: "r1", State: "ACCEPTED", Operation: "assign"}, KindInvalidState},
		{"unbalanced", &UnbalancedEntryError{TotalDebit: "100", TotalCredit: "90"}, KindUnbalanced},
		{"invalid line", &InvalidLineError{LineIndex: 0, Reason: "both sides"}, KindInvalidLine},
		{"not found", fmt.Errorf("lookup: %w", ErrNotFound), KindNotFound},
		{"forbidden", ErrForbidden, KindForbidden},
		{"duplicate", ErrDuplicate, KindDuplicate},
		{"app error wrapping not found", NewAppError(500, "query failed", ErrNotFound), KindNotFound},
		{"unknown", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestValidationError_MessageAndViolations(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "lines", Violation: "at least 2 lines are required"},
		{Field: "description", Violation: "is required"},
	}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "lines: at least 2 lines are required")
	assert.Contains(t, err.Error(), "description: is required")

	wrapped := fmt.Errorf("post: %w", err)
	assert.Len(t, Violations(wrapped), 2)
	assert.Nil(t, Violations(ErrNotFound))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError(500, "failed to begin transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to begin transaction: connection refused", err.Error())
	assert.Equal(t, "plain", NewAppError(400, "plain", nil).Error())
}
