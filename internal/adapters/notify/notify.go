// Package notify implements ports.Notifier sinks for clone results.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/amenflux/gitopsview/internal/ports"
)

// Console prints notifications as two lines: title, then description.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Notify writes n to the console.
func (c *Console) Notify(_ context.Context, n ports.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "%s\n", n.Title); err != nil {
		return err
	}
	if n.Description != "" {
		if _, err := fmt.Fprintf(c.out, "%s\n", n.Description); err != nil {
			return err
		}
	}
	return nil
}

// Log records notifications as info entries.
type Log struct {
	logger ports.Logger
}

// NewLog creates a notifier writing to logger.
func NewLog(logger ports.Logger) *Log {
	return &Log{logger: logger}
}

// Notify logs n.
func (l *Log) Notify(ctx context.Context, n ports.Notification) error {
	l.logger.Info(ctx, "notification",
		ports.F("id", n.ID),
		ports.F("title", n.Title),
		ports.F("description", n.Description),
	)
	return nil
}

// Multi fans a notification out to every sink and joins their errors.
type Multi []ports.Notifier

// Notify delivers n to each notifier in order.
func (m Multi) Notify(ctx context.Context, n ports.Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ ports.Notifier = (*Console)(nil)
	_ ports.Notifier = (*Log)(nil)
	_ ports.Notifier = Multi(nil)
)
