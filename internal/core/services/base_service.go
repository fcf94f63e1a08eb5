package services

import (
	"context"
	"log/slog"

	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.PermissionAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize consults the permission gate before a mutating operation.
// When no authorizer is configured access is granted; production wiring
// always provides one.
func (s *BaseService) Authorize(ctx context.Context, userID, action string) error {
	if s.Authorizer != nil {
		return s.Authorizer.AuthorizeAction(ctx, userID, action)
	}
	s.LogDebug(ctx, "No permission authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("action", action))
	return nil
}
