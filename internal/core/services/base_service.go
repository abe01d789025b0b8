package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Nil means time.Now in UTC.
	Clock func() time.Time
}

// Now returns the service's current time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LogFailure logs err at error level when it is unexpected and at debug level
// when it is a client error such as a validation or state failure.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.Kind(err) == apperrors.KindInternal {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()), slog.String("kind", apperrors.Kind(err)))
	args = append(args, keyvals...)
	s.LogDebug(ctx, msg, args...)
}

// AuthorizeCaller checks that the caller's role may perform op
func (s *BaseService) AuthorizeCaller(ctx context.Context, caller domain.Caller, op domain.Operation) error {
	if err := domain.Authorize(caller.Role, op); err != nil {
		s.GetLogger(ctx).Warn("Caller not authorized",
			slog.String("user_id", caller.UserID),
			slog.String("role", string(caller.Role)),
			slog.String("operation", string(op)))
		return err
	}
	return nil
}

// isNotFound reports whether err is apperrors.ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

// noopMetrics is used when no WorkflowMetrics is configured.
type noopMetrics struct{}

func (noopMetrics) RenewalTransition(string, domain.RenewalStatus) {}
func (noopMetrics) JournalPosted(domain.JournalSource)             {}
func (noopMetrics) SchedulerRun(string, int, int)                  {}

// noopNotifier is used when no NotificationDispatcher is configured.
type noopNotifier struct{}

func (noopNotifier) Publish(context.Context, domain.RenewalEvent) {}
