package mocks

import (
	"context"
	"sync"

	"github.com/amenflux/gitopsview/internal/ports"
)

// Notifier is a thread-safe test double for ports.Notifier.
type Notifier struct {
	mu            sync.RWMutex
	err           error
	notifications []ports.Notification
}

// NewNotifier creates a new Notifier mock.
func NewNotifier() *Notifier {
	return &Notifier{notifications: make([]ports.Notification, 0)}
}

// FailWith makes Notify return err after recording the notification.
func (m *Notifier) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Notify records n.
func (m *Notifier) Notify(_ context.Context, n ports.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
	return m.err
}

// Notifications returns every recorded notification in order.
func (m *Notifier) Notifications() []ports.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ports.Notification, len(m.notifications))
	copy(out, m.notifications)
	return out
}

var _ ports.Notifier = (*Notifier)(nil)
