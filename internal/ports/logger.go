// Package ports defines the interfaces the viewer uses to reach anything
// outside its own process state: logging, the system clipboard and the
// notification sink.
package ports

import (
	"context"
	"fmt"
	"strings"
)

// Level orders log entries by severity. Entries below a logger's level are
// dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	// LevelWarn covers failures the viewer survives, such as a refused
	// clipboard write or an undelivered notification.
	LevelWarn
	LevelError
)

// String returns the upper-case name written in text log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel reads a --log-level or log.level value. Empty means info.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Field is one key/value pair attached to an entry, such as the document id
// of a failed copy or the run's session id.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Err records err under the "error" key as its message text.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the sink for the viewer's operational events: copy and clone
// outcomes, notification delivery, viewer start and stop. The TUI writes to
// a file; CLI commands write to stderr.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	// With returns a logger that adds fields to every entry, used to stamp
	// the session id once per run.
	With(fields ...Field) Logger

	Level() Level
	SetLevel(level Level)
}
