package components

import (
	"strings"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderText is shown when the modal has no topic to display.
const PlaceholderText = "Select a component to view details"

// TopicSource resolves stage keys to topics. *content.Catalog implements it.
type TopicSource interface {
	Topic(key content.TopicKey) (content.Topic, bool)
}

// DetailModal is the overlay describing one flow stage.
type DetailModal struct {
	source   TopicSource
	cfg      BlockConfig
	markdown *render.Markdown

	open   bool
	key    content.TopicKey
	topic  content.Topic
	found  bool
	prose  string
	docs   Documents
	offset int

	width  int
	height int
	styles ui.Styles
	keys   ui.KeyMap
}

// NewDetailModal creates a closed modal reading topics from source.
func NewDetailModal(source TopicSource, cfg BlockConfig) DetailModal {
	return DetailModal{
		source: source,
		cfg:    cfg,
		width:  ui.DefaultWidth - 2*ui.ModalMargin,
		height: ui.DefaultHeight - 4,
		styles: ui.DefaultStyles(),
		keys:   ui.DefaultKeyMap(),
	}
}

// WithMarkdown sets the renderer used for topic sections.
func (m DetailModal) WithMarkdown(md *render.Markdown) DetailModal {
	m.markdown = md
	if m.found {
		m.prose = m.renderProse()
	}
	return m
}

// WithSize sets the outer size of the overlay.
func (m DetailModal) WithSize(width, height int) DetailModal {
	m.width = width
	m.height = height
	m.docs = m.docs.WithWidth(m.innerWidth())
	m.offset = m.clamp(m.offset)
	return m
}

// WithStyles sets the styles.
func (m DetailModal) WithStyles(styles ui.Styles) DetailModal {
	m.styles = styles
	m.docs = m.docs.WithStyles(styles)
	return m
}

// Open shows the topic for key, replacing any previous content and
// resetting tab and scroll state. Unknown keys show the placeholder.
func (m DetailModal) Open(key content.TopicKey) DetailModal {
	m.open = true
	m.key = key
	m.offset = 0
	m.topic, m.found = content.Topic{}, false
	if m.source != nil && !key.IsNone() {
		m.topic, m.found = m.source.Topic(key)
	}

	if !m.found {
		m.prose = ""
		m.docs = Documents{}
		return m
	}
	m.prose = m.renderProse()
	m.docs = NewDocuments(m.topic.DocumentSet, m.cfg).
		WithWidth(m.innerWidth()).
		WithStyles(m.styles)
	return m
}

// Close hides the modal.
func (m DetailModal) Close() DetailModal {
	m.open = false
	return m
}

// IsOpen reports whether the modal is visible.
func (m DetailModal) IsOpen() bool {
	return m.open
}

// Key returns the requested topic key.
func (m DetailModal) Key() content.TopicKey {
	return m.key
}

// Topic returns the displayed topic, false when showing the placeholder.
func (m DetailModal) Topic() (content.Topic, bool) {
	return m.topic, m.found
}

// Documents returns the topic's tabbed documents.
func (m DetailModal) Documents() Documents {
	return m.docs
}

// ActiveDocument returns the document on the active tab.
func (m DetailModal) ActiveDocument() content.Document {
	return m.docs.Active()
}

// Offset returns the first visible line.
func (m DetailModal) Offset() int {
	return m.offset
}

// Update handles keys while open. Copy results reach the blocks even after
// the modal closed so their state stays consistent.
func (m DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.docs, cmd = m.docs.Update(msg)
		return m, cmd
	}
	if !m.open {
		return m, nil
	}
	return m.handleKeyMsg(keyMsg)
}

func (m DetailModal) handleKeyMsg(msg tea.KeyMsg) (DetailModal, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.Close(), nil
	case m.keys.IsUp(msg):
		m.offset = m.clamp(m.offset - 1)
	case m.keys.IsDown(msg):
		m.offset = m.clamp(m.offset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.offset = m.clamp(m.offset - m.page())
	case key.Matches(msg, m.keys.PageDown):
		m.offset = m.clamp(m.offset + m.page())
	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		var cmd tea.Cmd
		m.docs, cmd = m.docs.Update(msg)
		m.offset = m.clamp(m.offset)
		return m, cmd
	case key.Matches(msg, m.keys.Copy):
		var cmd tea.Cmd
		m.docs, cmd = m.docs.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DetailModal) renderProse() string {
	md := render.SectionsMarkdown(m.topic.Sections())
	if md == "" {
		return ""
	}
	return m.markdown.Render(md)
}

func (m DetailModal) innerWidth() int {
	return max(m.width-6, 10)
}

func (m DetailModal) bodyHeight() int {
	return max(m.height-4, 1)
}

func (m DetailModal) page() int {
	return max(m.bodyHeight()-1, 1)
}

func (m DetailModal) clamp(offset int) int {
	maxOffset := len(m.body()) - m.bodyHeight()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m DetailModal) body() []string {
	var sb strings.Builder
	if !m.found {
		sb.WriteString(m.styles.Subtitle.Render(PlaceholderText))
		return strings.Split(sb.String(), "\n")
	}

	sb.WriteString(m.styles.Title.Render(m.topic.Title()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(render.Wrap(m.topic.Description(), m.innerWidth())))
	sb.WriteString("\n")
	if m.prose != "" {
		sb.WriteString("\n")
		sb.WriteString(m.prose)
		sb.WriteString("\n")
	}
	if m.docs.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.docs.View())
	}
	return strings.Split(sb.String(), "\n")
}

// View renders the visible window of the overlay.
func (m DetailModal) View() string {
	if !m.open {
		return ""
	}
	lines := m.body()
	end := min(m.offset+m.bodyHeight(), len(lines))
	visible := strings.Join(lines[m.offset:end], "\n")

	hint := m.styles.Help.Render("esc close · ↑/↓ scroll · [/] tabs · c copy")
	return m.styles.Modal.Width(m.width - 2).Render(visible + "\n\n" + hint)
}
