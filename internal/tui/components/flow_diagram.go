package components

import (
	"strings"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	arrowRight = " → "
	arrowDown  = "↓"
)

// FlowDiagram draws the pipeline stages as cards joined by arrows. Enter on
// the focused card asks the page to open that stage's details.
type FlowDiagram struct {
	stages  []content.Stage
	cursor  int
	focused bool
	width   int
	styles  ui.Styles
	keys    ui.KeyMap
}

// NewFlowDiagram creates a diagram over stages in order.
func NewFlowDiagram(stages []content.Stage) FlowDiagram {
	return FlowDiagram{
		stages: append([]content.Stage(nil), stages...),
		width:  ui.DefaultWidth,
		styles: ui.DefaultStyles(),
		keys:   ui.DefaultKeyMap(),
	}
}

// Len returns the number of stages.
func (f FlowDiagram) Len() int {
	return len(f.stages)
}

// Cursor returns the index of the highlighted stage.
func (f FlowDiagram) Cursor() int {
	return f.cursor
}

// Current returns the highlighted stage.
func (f FlowDiagram) Current() (content.Stage, bool) {
	if len(f.stages) == 0 {
		return content.Stage{}, false
	}
	return f.stages[f.cursor], true
}

// Select highlights stage i. Out of range indexes are ignored.
func (f FlowDiagram) Select(i int) FlowDiagram {
	if i >= 0 && i < len(f.stages) {
		f.cursor = i
	}
	return f
}

// Focused reports whether the diagram receives keys.
func (f FlowDiagram) Focused() bool {
	return f.focused
}

// Focus gives the diagram key focus.
func (f FlowDiagram) Focus() FlowDiagram {
	f.focused = true
	return f
}

// Blur removes key focus.
func (f FlowDiagram) Blur() FlowDiagram {
	f.focused = false
	return f
}

// WithWidth sets the available width.
func (f FlowDiagram) WithWidth(width int) FlowDiagram {
	f.width = width
	return f
}

// WithStyles sets the styles.
func (f FlowDiagram) WithStyles(styles ui.Styles) FlowDiagram {
	f.styles = styles
	return f
}

// Init implements tea.Model.
func (f FlowDiagram) Init() tea.Cmd {
	return nil
}

// Update handles navigation while focused.
func (f FlowDiagram) Update(msg tea.Msg) (FlowDiagram, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && f.focused {
		return f.handleKeyMsg(msg)
	}
	return f, nil
}

func (f FlowDiagram) handleKeyMsg(msg tea.KeyMsg) (FlowDiagram, tea.Cmd) {
	switch {
	case f.keys.IsLeft(msg):
		if f.cursor > 0 {
			f.cursor--
		}
	case f.keys.IsRight(msg):
		if f.cursor < len(f.stages)-1 {
			f.cursor++
		}
	case key.Matches(msg, f.keys.Select):
		if stage, ok := f.Current(); ok {
			return f, ui.NewOpenTopicMsg(stage.Key)
		}
	}
	return f, nil
}

// Horizontal reports whether the cards fit side by side.
func (f FlowDiagram) Horizontal() bool {
	n := len(f.stages)
	return n > 0 && f.rowCardWidth() >= ui.MinCardWidth
}

func (f FlowDiagram) rowCardWidth() int {
	n := len(f.stages)
	if n == 0 {
		return 0
	}
	arrows := (n - 1) * lipgloss.Width(arrowRight)
	return (f.width-arrows)/n - 2
}

// View renders the diagram.
func (f FlowDiagram) View() string {
	if len(f.stages) == 0 {
		return ""
	}

	if f.Horizontal() {
		width := f.rowCardWidth()
		parts := make([]string, 0, 2*len(f.stages)-1)
		for i, stage := range f.stages {
			if i > 0 {
				parts = append(parts, f.styles.Arrow.Render(arrowRight))
			}
			parts = append(parts, f.card(i, stage, width))
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	width := max(min(f.width-2, 48), ui.MinCardWidth)
	parts := make([]string, 0, 2*len(f.stages)-1)
	for i, stage := range f.stages {
		if i > 0 {
			arrow := lipgloss.PlaceHorizontal(width+2, lipgloss.Center, f.styles.Arrow.Render(arrowDown))
			parts = append(parts, arrow)
		}
		parts = append(parts, f.card(i, stage, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f FlowDiagram) card(i int, stage content.Stage, width int) string {
	inner := max(width-2, 1)
	label := lipgloss.NewStyle().Bold(true).Foreground(ui.StageColor(stage.Key)).Render(stage.Label)

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString("\n")
	sb.WriteString(f.styles.Subtitle.Render(render.Wrap(stage.Summary, inner)))
	sb.WriteString("\n")
	for _, bullet := range stage.Bullets {
		sb.WriteString(f.styles.Paragraph.Render(render.Wrap("• "+bullet, inner)))
		sb.WriteString("\n")
	}
	sb.WriteString(f.styles.Help.Render(render.Wrap(stage.Footer, inner)))

	focused := f.focused && i == f.cursor
	return f.styles.StageCard(stage.Key, focused).Width(width).Render(sb.String())
}
