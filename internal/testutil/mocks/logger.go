package mocks

import (
	"context"
	"sync"

	"github.com/amenflux/gitopsview/internal/ports"
)

// LogEntry is one message captured by Logger.
type LogEntry struct {
	Level   ports.Level
	Message string
	Fields  []ports.Field
}

// Field returns the value of key, searching the entry's fields.
func (e LogEntry) Field(key string) (interface{}, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Logger captures entries at every level for assertions.
type Logger struct {
	sink   *logSink
	fields []ports.Field
	level  ports.Level
}

type logSink struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// NewLogger creates a new Logger mock that records all levels.
func NewLogger() *Logger {
	return &Logger{sink: &logSink{}, level: ports.LevelDebug}
}

func (m *Logger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	m.record(ports.LevelDebug, msg, fields)
}

func (m *Logger) Info(_ context.Context, msg string, fields ...ports.Field) {
	m.record(ports.LevelInfo, msg, fields)
}

func (m *Logger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	m.record(ports.LevelWarn, msg, fields)
}

func (m *Logger) Error(_ context.Context, msg string, fields ...ports.Field) {
	m.record(ports.LevelError, msg, fields)
}

// With returns a child sharing the same entry sink.
func (m *Logger) With(fields ...ports.Field) ports.Logger {
	child := &Logger{sink: m.sink, level: m.level}
	child.fields = append(append(child.fields, m.fields...), fields...)
	return child
}

func (m *Logger) Level() ports.Level { return m.level }

func (m *Logger) SetLevel(level ports.Level) { m.level = level }

// Entries returns every captured entry in order.
func (m *Logger) Entries() []LogEntry {
	m.sink.mu.RLock()
	defer m.sink.mu.RUnlock()
	out := make([]LogEntry, len(m.sink.entries))
	copy(out, m.sink.entries)
	return out
}

// Messages returns the captured messages at level.
func (m *Logger) Messages(level ports.Level) []string {
	var out []string
	for _, e := range m.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (m *Logger) record(level ports.Level, msg string, fields []ports.Field) {
	if level < m.level {
		return
	}
	all := make([]ports.Field, 0, len(m.fields)+len(fields))
	all = append(all, m.fields...)
	all = append(all, fields...)

	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = append(m.sink.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

var _ ports.Logger = (*Logger)(nil)
