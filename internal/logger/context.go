package logger

import (
	"context"

	"go.uber.org/zap"
)

// loggerKey is the context key for the request-scoped logger.
type loggerKey struct{}

var nop = zap.NewNop()

// NewContext returns a child context carrying l.
func NewContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx. Absent or nil loggers
// yield a no-op one, so callers never nil-check.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return nop
}
