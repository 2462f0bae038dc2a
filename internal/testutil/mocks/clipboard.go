// Package mocks provides test doubles for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/amenflux/gitopsview/internal/ports"
)

// Clipboard is a thread-safe test double for ports.Clipboard.
type Clipboard struct {
	mu     sync.RWMutex
	err    error
	writes []string
}

// NewClipboard creates a new Clipboard mock.
func NewClipboard() *Clipboard {
	return &Clipboard{writes: make([]string, 0)}
}

// FailWith makes every subsequent write return err.
func (m *Clipboard) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// WriteText records text, or returns the registered error.
func (m *Clipboard) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Writes returns every successful write in order.
func (m *Clipboard) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}

// Last returns the most recent write, or "" if none.
func (m *Clipboard) Last() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.writes) == 0 {
		return ""
	}
	return m.writes[len(m.writes)-1]
}

var _ ports.Clipboard = (*Clipboard)(nil)
