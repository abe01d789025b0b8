package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	"github.com/SscSPs/greenpages_backend/internal/dto"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
)

func init() {
	// Report binding violations under the json/form names clients send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// statusForKind maps an error kind to its HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case apperrors.KindValidation, apperrors.KindDuplicate:
		return http.StatusBadRequest
	case apperrors.KindInvalidState:
		return http.StatusConflict
	case apperrors.KindUnbalanced, apperrors.KindInvalidLine:
		return http.StatusUnprocessableEntity
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response for err. Internal failures are
// logged with action and reported with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	kind := apperrors.Kind(err)
	status := statusForKind(kind)

	resp := dto.ErrorResponse{Error: kind, Message: err.Error(), Violations: apperrors.Violations(err)}
	switch {
	case kind == apperrors.KindDuplicate:
		// Duplicates surface as validation failures to clients.
		resp.Error = apperrors.KindValidation
	case status == http.StatusInternalServerError:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		resp.Message = "Failed to " + action
		c.JSON(status, resp)
		return
	}

	logger.Warn("Request rejected", slog.String("action", action), slog.String("kind", kind), slog.String("error", err.Error()))
	c.JSON(status, resp)
}

// respondBindError reports a request that could not be bound or failed its
// binding tags as a validation error.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		ve      *apperrors.ValidationError
	)
	switch {
	case errors.As(err, &verrs):
		ve = &apperrors.ValidationError{Violations: make([]apperrors.FieldViolation, 0, len(verrs))}
		for _, fe := range verrs {
			ve.Violations = append(ve.Violations, apperrors.FieldViolation{Field: fieldPath(fe), Violation: violationFor(fe)})
		}
	case errors.As(err, &typeErr):
		ve = apperrors.NewValidationError(typeErr.Field, "has an invalid type")
	default:
		ve = apperrors.NewValidationError("body", "is malformed")
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.KindValidation, Message: ve.Error(), Violations: ve.Violations})
}

// fieldPath drops the request struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func violationFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed the " + fe.Tag() + " check"
	}
}

// callerOrAbort returns the authenticated caller, responding 401 when the
// auth middleware did not run.
func callerOrAbort(c *gin.Context, logger *slog.Logger) (domain.Caller, bool) {
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperrors.KindUnauthorized, Message: "Unauthorized"})
		return domain.Caller{}, false
	}
	return caller, true
}
