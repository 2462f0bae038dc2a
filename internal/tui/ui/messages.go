package ui

import (
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// OpenTopicMsg asks the page to open the detail modal for a stage.
type OpenTopicMsg struct {
	Key content.TopicKey
}

// NotificationMsg carries a transient success notification to the page.
type NotificationMsg struct {
	Notification ports.Notification
}

// DialogClosedMsg reports that the clone dialog closed itself.
type DialogClosedMsg struct{}

// NewOpenTopicMsg creates a command that requests a topic.
func NewOpenTopicMsg(key content.TopicKey) tea.Cmd {
	return func() tea.Msg {
		return OpenTopicMsg{Key: key}
	}
}

// NewNotificationMsg creates a command that delivers n.
func NewNotificationMsg(n ports.Notification) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Notification: n}
	}
}
