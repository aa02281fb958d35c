// Package log provides structured logging helpers on top of log/slog:
// a component-tagged logger, shared field names, and HTTP request
// logging middleware.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger and tags every record with its component.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a component-tagged text logger writing to stdout.
func New(component string, level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler),
		component: component,
	}
}

// WithComponent returns a logger tagged with a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger,
		component: component,
	}
}

func (l *Logger) tag(args []any) []any {
	return append([]any{FieldComponent, l.component}, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info(msg, l.tag(args)...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.Logger.InfoContext(ctx, msg, l.tag(args)...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn(msg, l.tag(args)...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error(msg, l.tag(args)...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.Logger.ErrorContext(ctx, msg, l.tag(args)...)
}

// SetDefault installs the wrapped slog logger as the process default.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
