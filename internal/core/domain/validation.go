package domain

import "github.com/SscSPs/greenpages_backend/internal/apperrors"

// ValidationResult collects field/violation pairs found while checking an input.
type ValidationResult struct {
	Violations []apperrors.FieldViolation
}

// Add records a violation for field.
func (v *ValidationResult) Add(field, violation string) {
	v.Violations = append(v.Violations, apperrors.FieldViolation{Field: field, Violation: violation})
}

// OK reports whether no violation was recorded.
func (v ValidationResult) OK() bool {
	return len(v.Violations) == 0
}

// Err returns nil when the result is OK, otherwise a *apperrors.ValidationError.
func (v ValidationResult) Err() error {
	if v.OK() {
		return nil
	}
	return &apperrors.ValidationError{Violations: v.Violations}
}
