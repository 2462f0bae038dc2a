package components

import (
	"strings"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// ContentPanel shows one component: its heading, an optional notice and its
// tabbed documents. The only state is the active tab.
type ContentPanel struct {
	panel   content.Panel
	docs    Documents
	width   int
	focused bool
	styles  ui.Styles
}

// NewContentPanel creates a panel view.
func NewContentPanel(panel content.Panel, cfg BlockConfig) ContentPanel {
	return ContentPanel{
		panel:  panel,
		docs:   NewDocuments(panel.DocumentSet, cfg),
		width:  ui.DefaultWidth,
		styles: ui.DefaultStyles(),
	}
}

// ID returns the panel id.
func (p ContentPanel) ID() content.PanelID {
	return p.panel.ID()
}

// Label returns the short label used in the panel selector.
func (p ContentPanel) Label() string {
	return p.panel.Label()
}

// Panel returns the displayed panel.
func (p ContentPanel) Panel() content.Panel {
	return p.panel
}

// ActiveDocument returns the document on the active tab.
func (p ContentPanel) ActiveDocument() content.Document {
	return p.docs.Active()
}

// ActiveBlock returns the block on the active tab.
func (p ContentPanel) ActiveBlock() (CodeBlock, bool) {
	return p.docs.ActiveBlock()
}

// Documents returns the tabbed documents.
func (p ContentPanel) Documents() Documents {
	return p.docs
}

// SelectTab activates the document with id.
func (p ContentPanel) SelectTab(id string) ContentPanel {
	p.docs = p.docs.SelectTab(id)
	return p
}

// Focused reports whether the panel receives keys.
func (p ContentPanel) Focused() bool {
	return p.focused
}

// Focus gives the panel key focus.
func (p ContentPanel) Focus() ContentPanel {
	p.focused = true
	return p
}

// Blur removes key focus.
func (p ContentPanel) Blur() ContentPanel {
	p.focused = false
	return p
}

// WithWidth sets the panel width.
func (p ContentPanel) WithWidth(width int) ContentPanel {
	p.width = width
	p.docs = p.docs.WithWidth(width - 4)
	return p
}

// WithHeight sets how many code lines are visible.
func (p ContentPanel) WithHeight(height int) ContentPanel {
	p.docs = p.docs.WithHeight(height)
	return p
}

// WithStyles sets the styles.
func (p ContentPanel) WithStyles(styles ui.Styles) ContentPanel {
	p.styles = styles
	p.docs = p.docs.WithStyles(styles)
	return p
}

// Update routes keys to the documents only while focused. Other messages
// always reach the blocks so copy results and resets land.
func (p ContentPanel) Update(msg tea.Msg) (ContentPanel, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !p.focused {
		return p, nil
	}
	var cmd tea.Cmd
	p.docs, cmd = p.docs.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p ContentPanel) View() string {
	inner := max(p.width-4, 10)

	var sb strings.Builder
	sb.WriteString(p.styles.PanelTitle.Render(p.panel.Title()))
	sb.WriteString("\n")
	sb.WriteString(p.styles.Subtitle.Render(render.Wrap(p.panel.Description(), inner)))
	sb.WriteString("\n")

	if notice, ok := p.panel.Notice(); ok {
		body := p.styles.Warning.Bold(true).Render(notice.Title) + "\n" +
			p.styles.Paragraph.Render(render.Wrap(notice.Text, inner-2))
		sb.WriteString(p.styles.Notice.Render(body))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(p.docs.View())

	style := p.styles.Panel.Width(p.width - 2)
	if p.focused {
		style = style.BorderForeground(ui.ColorPrimary)
	}
	return style.Render(sb.String())
}
