// Package logging wires zap and carries the request id through context.Context.
package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// New builds the process logger. "production" gets JSON output, anything else the console encoder.
func New(env, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id, or "" when none was set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger tags every entry with the request id and the operation being performed.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a logger with request context on top of the global zap logger.
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{zap: zap.L().With(zap.String("request_id", requestID))}
}

func (l *Logger) LogError(operation string, err error, fields ...zap.Field) {
	l.zap.Error(operation+" failed", append(fields, zap.String("operation", operation), zap.Error(err))...)
}

func (l *Logger) LogInfo(operation string, message string, fields ...zap.Field) {
	l.zap.Info(message, append(fields, zap.String("operation", operation))...)
}

func (l *Logger) LogWarn(operation string, message string, fields ...zap.Field) {
	l.zap.Warn(message, append(fields, zap.String("operation", operation))...)
}
