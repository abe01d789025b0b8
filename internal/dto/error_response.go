package dto

import "github.com/SscSPs/greenpages_backend/internal/apperrors"

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error      string                     `json:"error" example:"VALIDATION_ERROR"`
	Message    string                     `json:"message"`
	Violations []apperrors.FieldViolation `json:"violations,omitempty"`
}
