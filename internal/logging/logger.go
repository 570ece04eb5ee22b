// Package logging wraps zerolog with the request-scoped helpers used by the
// portal's services and handlers.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger writing to stdout tagged with the service name.
func New(service, level string) *Logger {
	return NewWithWriter(os.Stdout, service, level)
}

func NewWithWriter(w io.Writer, service, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", service).
		Logger()
	return &Logger{l}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger carrying a component field.
func (l *Logger) Component(component string) *Logger {
	return &Logger{l.Logger.With().Str("component", component).Logger()}
}

// FromContext returns a child logger tagged with the request id carried by ctx.
func (l *Logger) FromContext(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{l.Logger.With().Str("request_id", rid).Logger()}
}

func (l *Logger) LogError(operation string, err error) {
	l.Error().Str("operation", operation).Err(err).Send()
}

func (l *Logger) LogWarn(operation string, err error) {
	l.Warn().Str("operation", operation).Err(err).Send()
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.Warn().Str("operation", operation).Msgf(format, args...)
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.Info().Str("operation", operation).Msgf(format, args...)
}

// WithRequestID stores the request id in ctx for FromContext.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id from ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}
