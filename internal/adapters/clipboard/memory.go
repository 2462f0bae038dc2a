package clipboard

import (
	"context"
	"sync"

	"github.com/amenflux/gitopsview/internal/ports"
)

// Memory keeps the last written text in process. It backs --no-clipboard
// sessions and headless environments.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteText stores text.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last stored text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

var _ ports.Clipboard = (*Memory)(nil)
