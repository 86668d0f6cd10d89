// Package log provides structured logging for the service, built on
// log/slog with a component attribute per logger.
package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a fixed component attribute
type Logger struct {
	*slog.Logger
}

// New creates a logger writing text records to stdout at the given level
func New(component string, level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler).With("component", component)}
}

// Default creates an info-level logger for the given component
func Default(component string) *Logger {
	return New(component, slog.LevelInfo)
}

// WithComponent derives a logger for a sub-component
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}
