package ports

import (
	"context"
	"time"
)

// Notification is a transient, user-facing message such as the
// "Repository Cloned Successfully" toast.
type Notification struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}

// Notifier displays notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification) error

// Notify calls f(ctx, n).
func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}
