package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// contextKey is the type of the keys stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	callerCtxKey = contextKey("caller")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger when none is set, e.g. in scheduler jobs and tests.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin context.
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	return GetLoggerFromCtx(c.Request.Context())
}

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerCtxKey, caller)
}

// GetCallerFromCtx retrieves the authenticated caller from a standard context.
func GetCallerFromCtx(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerCtxKey).(domain.Caller)
	return caller, ok
}

// GetCallerFromContext retrieves the authenticated caller from the Gin context.
// It returns the caller and a boolean indicating if it was found.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	return GetCallerFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	caller, ok := GetCallerFromContext(c)
	if !ok {
		return "", false
	}
	return caller.UserID, true
}
