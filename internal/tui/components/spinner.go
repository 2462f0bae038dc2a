// Package components provides the viewer's reusable Bubble Tea components.
package components

import (
	"fmt"

	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner displays an animated spinner with optional message.
type Spinner struct {
	spinner spinner.Model
	message string
	styles  ui.Styles
}

// NewSpinner creates a new spinner component.
func NewSpinner() Spinner {
	styles := ui.DefaultStyles()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return Spinner{
		spinner: s,
		styles:  styles,
	}
}

// Message returns the current message.
func (s Spinner) Message() string {
	return s.message
}

// SetMessage sets the spinner message.
func (s Spinner) SetMessage(message string) Spinner {
	s.message = message
	return s
}

// WithStyles sets the styles.
func (s Spinner) WithStyles(styles ui.Styles) Spinner {
	s.styles = styles
	s.spinner.Style = styles.Spinner
	return s
}

// Tick returns the command that starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.spinner.Tick
}

// Update handles spinner animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner.
func (s Spinner) View() string {
	if s.message != "" {
		return fmt.Sprintf("%s %s", s.spinner.View(), s.message)
	}
	return s.spinner.View()
}
