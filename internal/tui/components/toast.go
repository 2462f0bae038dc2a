package components

import (
	"time"

	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// toastExpireMsg hides the toast showing notification id.
type toastExpireMsg struct {
	id string
}

// Toast shows the most recent notification for a fixed duration.
type Toast struct {
	current  ports.Notification
	visible  bool
	duration time.Duration
	styles   ui.Styles
}

// NewToast creates a hidden toast.
func NewToast() Toast {
	return Toast{
		duration: ui.ToastDuration,
		styles:   ui.DefaultStyles(),
	}
}

// WithDuration sets how long each notification stays visible.
func (t Toast) WithDuration(d time.Duration) Toast {
	if d > 0 {
		t.duration = d
	}
	return t
}

// WithStyles sets the styles.
func (t Toast) WithStyles(styles ui.Styles) Toast {
	t.styles = styles
	return t
}

// Visible reports whether a notification is showing.
func (t Toast) Visible() bool {
	return t.visible
}

// Current returns the displayed notification.
func (t Toast) Current() ports.Notification {
	return t.current
}

// Show displays n, replacing any current notification, and returns the
// command that hides it.
func (t Toast) Show(n ports.Notification) (Toast, tea.Cmd) {
	t.current = n
	t.visible = true
	id := n.ID
	return t, tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

// Update hides the toast when its own expiry arrives.
func (t Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.NotificationMsg:
		return t.Show(msg.Notification)
	case toastExpireMsg:
		if msg.id == t.current.ID {
			t.visible = false
		}
	}
	return t, nil
}

// View renders the toast, or "" when hidden.
func (t Toast) View() string {
	if !t.visible {
		return ""
	}
	body := t.styles.Success.Bold(true).Render(t.current.Title)
	if t.current.Description != "" {
		body += "\n" + t.styles.Paragraph.Render(t.current.Description)
	}
	return t.styles.Toast.Render(body)
}
