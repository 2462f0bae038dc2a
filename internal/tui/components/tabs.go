package components

import (
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/lipgloss"
)

// Tabs is a horizontal tab selector. Exactly one tab is active whenever
// there is at least one label.
type Tabs struct {
	labels []string
	active int
	styles ui.Styles
}

// NewTabs creates a tab row with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{
		labels: append([]string(nil), labels...),
		styles: ui.DefaultStyles(),
	}
}

// Len returns the number of tabs.
func (t Tabs) Len() int {
	return len(t.labels)
}

// Active returns the index of the active tab.
func (t Tabs) Active() int {
	return t.active
}

// Label returns the label at i, or "" when out of range.
func (t Tabs) Label(i int) string {
	if i < 0 || i >= len(t.labels) {
		return ""
	}
	return t.labels[i]
}

// Select activates tab i. Out of range indexes are ignored.
func (t Tabs) Select(i int) Tabs {
	if i >= 0 && i < len(t.labels) {
		t.active = i
	}
	return t
}

// Next activates the following tab, wrapping around.
func (t Tabs) Next() Tabs {
	if len(t.labels) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.labels)
	return t
}

// Prev activates the preceding tab, wrapping around.
func (t Tabs) Prev() Tabs {
	if len(t.labels) == 0 {
		return t
	}
	t.active = (t.active - 1 + len(t.labels)) % len(t.labels)
	return t
}

// WithStyles sets the styles.
func (t Tabs) WithStyles(styles ui.Styles) Tabs {
	t.styles = styles
	return t
}

// View renders the tab row.
func (t Tabs) View() string {
	rendered := make([]string, 0, len(t.labels))
	for i, label := range t.labels {
		style := t.styles.Tab
		if i == t.active {
			style = t.styles.TabActive
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
