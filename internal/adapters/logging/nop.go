// Package logging implements ports.Logger: ConsoleLogger renders text or
// JSON entries to any writer, NopLogger drops everything.
package logging

import (
	"context"

	"github.com/amenflux/gitopsview/internal/ports"
)

// NopLogger discards all messages. Components fall back to it when no
// logger is wired.
type NopLogger struct {
	level ports.Level
}

// NewNopLogger creates a new no-op logger.
func NewNopLogger() *NopLogger {
	return &NopLogger{level: ports.LevelInfo}
}

func (l *NopLogger) Debug(_ context.Context, _ string, _ ...ports.Field) {}
func (l *NopLogger) Info(_ context.Context, _ string, _ ...ports.Field)  {}
func (l *NopLogger) Warn(_ context.Context, _ string, _ ...ports.Field)  {}
func (l *NopLogger) Error(_ context.Context, _ string, _ ...ports.Field) {}

// With returns the receiver; there are no fields to keep.
func (l *NopLogger) With(_ ...ports.Field) ports.Logger { return l }

// Level returns the log level.
func (l *NopLogger) Level() ports.Level { return l.level }

// SetLevel sets the log level.
func (l *NopLogger) SetLevel(level ports.Level) { l.level = level }

// OrNop returns logger, or a NopLogger when logger is nil.
func OrNop(logger ports.Logger) ports.Logger {
	if logger == nil {
		return NewNopLogger()
	}
	return logger
}

var _ ports.Logger = (*NopLogger)(nil)
