package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that an operation is not legal in the resource's current state.
var ErrInvalidState = errors.New("invalid state")

// ErrUnbalancedEntry indicates that a journal entry's debits and credits differ.
var ErrUnbalancedEntry = errors.New("unbalanced journal entry")

// ErrInvalidLine indicates that a journal line violates the debit/credit rules.
var ErrInvalidLine = errors.New("invalid journal line")

// ErrForbidden indicates that the caller's role does not allow the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when an unexpected failure is hidden from the caller.
var ErrInternal = errors.New("internal error")

// Error kinds reported to API clients.
const (
	KindValidation   = "VALIDATION_ERROR"
	KindInvalidState = "INVALID_STATE"
	KindUnbalanced   = "UNBALANCED_ENTRY"
	KindInvalidLine  = "INVALID_LINE"
	KindNotFound     = "NOT_FOUND"
	KindForbidden    = "FORBIDDEN"
	KindUnauthorized = "UNAUTHORIZED"
	KindInternal     = "INTERNAL_ERROR"
	KindDuplicate    = "DUPLICATE"
)

// AppError wraps an underlying error with an HTTP-ish status code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// FieldViolation is a single failed constraint on an input field.
type FieldViolation struct {
	Field     string `json:"field"`
	Violation string `json:"violation"`
}

// ValidationError carries every violation found in one validation pass.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError with a single violation.
func NewValidationError(field, violation string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Violation: violation}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Violation)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidStateError reports an operation attempted from a state that does not permit it.
type InvalidStateError struct {
	Entity    string
	ID        string
	State     string
	Operation string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s %s in state %s", ErrInvalidState.Error(), e.Operation, e.Entity, e.ID, e.State)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// InvalidLineError reports a journal line that breaks a structural rule.
type InvalidLineError struct {
	LineIndex int
	Reason    string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrInvalidLine.Error(), e.LineIndex, e.Reason)
}

func (e *InvalidLineError) Is(target error) bool { return target == ErrInvalidLine }

// UnbalancedEntryError reports the differing totals of an unbalanced entry.
type UnbalancedEntryError struct {
	TotalDebit  string
	TotalCredit string
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s", ErrUnbalancedEntry.Error(), e.TotalDebit, e.TotalCredit)
}

func (e *UnbalancedEntryError) Is(target error) bool { return target == ErrUnbalancedEntry }

// Kind maps an error to the kind string exposed to clients.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrUnbalancedEntry):
		return KindUnbalanced
	case errors.Is(err, ErrInvalidLine):
		return KindInvalidLine
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	default:
		return KindInternal
	}
}

// Violations returns the field violations carried by err, if any.
func Violations(err error) []FieldViolation {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Violations
	}
	return nil
}
