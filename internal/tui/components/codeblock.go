package components

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/amenflux/gitopsview/internal/adapters/logging"
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/tui/render"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCopyFeedback is how long "Copied!" stays visible after a copy.
const DefaultCopyFeedback = 2 * time.Second

// CopiedLabel is shown next to the title while copy feedback is active.
const CopiedLabel = "Copied!"

var blockSeq atomic.Uint64

// copyResultMsg reports the outcome of a clipboard write for block id.
type copyResultMsg struct {
	id  uint64
	err error
}

// copyResetMsg ends the feedback window started by generation gen.
type copyResetMsg struct {
	id  uint64
	gen uint64
}

// BlockConfig holds the collaborators shared by every code block.
type BlockConfig struct {
	Clipboard   ports.Clipboard
	Logger      ports.Logger
	Highlighter *render.Highlighter
	Feedback    time.Duration
	LineNumbers bool
}

// DefaultBlockConfig returns a config with the default feedback window and
// line numbers on. Clipboard and Logger must be set by the caller.
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		Feedback:    DefaultCopyFeedback,
		LineNumbers: true,
	}
}

// CodeBlock displays one document with a line-number gutter and copies its
// content to the clipboard on request.
type CodeBlock struct {
	id     uint64
	doc    content.Document
	lines  []string
	cfg    BlockConfig
	copied bool
	gen    uint64
	offset int
	height int
	width  int
	styles ui.Styles
	keys   ui.KeyMap
}

// NewCodeBlock creates a block for doc.
func NewCodeBlock(doc content.Document, cfg BlockConfig) CodeBlock {
	if cfg.Feedback <= 0 {
		cfg.Feedback = DefaultCopyFeedback
	}
	lines := doc.Lines()
	if cfg.Highlighter != nil {
		lines = cfg.Highlighter.Lines(doc)
	}
	return CodeBlock{
		id:     blockSeq.Add(1),
		doc:    doc,
		lines:  lines,
		cfg:    cfg,
		styles: ui.DefaultStyles(),
		keys:   ui.DefaultKeyMap(),
	}
}

// Document returns the displayed document.
func (b CodeBlock) Document() content.Document {
	return b.doc
}

// Text returns the exact text a copy writes.
func (b CodeBlock) Text() string {
	return b.doc.Content()
}

// Lines returns the display lines, one per source line.
func (b CodeBlock) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Copied reports whether copy feedback is showing.
func (b CodeBlock) Copied() bool {
	return b.copied
}

// Offset returns the first visible line.
func (b CodeBlock) Offset() int {
	return b.offset
}

// WithHeight limits the visible lines. Zero shows every line.
func (b CodeBlock) WithHeight(height int) CodeBlock {
	if height < 0 {
		height = 0
	}
	b.height = height
	b.offset = b.clamp(b.offset)
	return b
}

// WithWidth sets the maximum rendered width. Longer lines are truncated.
func (b CodeBlock) WithWidth(width int) CodeBlock {
	b.width = width
	return b
}

// WithStyles sets the styles.
func (b CodeBlock) WithStyles(styles ui.Styles) CodeBlock {
	b.styles = styles
	return b
}

// Copy returns the command that writes the content to the clipboard.
func (b CodeBlock) Copy() tea.Cmd {
	id, text, clip := b.id, b.doc.Content(), b.cfg.Clipboard
	return func() tea.Msg {
		if clip == nil {
			return copyResultMsg{id: id, err: ports.ErrClipboardUnavailable}
		}
		return copyResultMsg{id: id, err: clip.WriteText(context.Background(), text)}
	}
}

// Init implements tea.Model.
func (b CodeBlock) Init() tea.Cmd {
	return nil
}

// Update handles copy results, feedback resets and scroll keys.
func (b CodeBlock) Update(msg tea.Msg) (CodeBlock, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResultMsg:
		if msg.id != b.id {
			return b, nil
		}
		return b.handleCopyResult(msg.err)

	case copyResetMsg:
		if msg.id == b.id && msg.gen == b.gen {
			b.copied = false
		}
		return b, nil

	case tea.KeyMsg:
		return b.handleKeyMsg(msg)
	}
	return b, nil
}

func (b CodeBlock) handleCopyResult(err error) (CodeBlock, tea.Cmd) {
	if err != nil {
		logging.OrNop(b.cfg.Logger).Warn(context.Background(), "clipboard copy failed",
			ports.F("document", b.doc.ID()),
			ports.Err(err),
		)
		return b, nil
	}

	b.gen++
	b.copied = true
	id, gen := b.id, b.gen
	return b, tea.Tick(b.cfg.Feedback, func(time.Time) tea.Msg {
		return copyResetMsg{id: id, gen: gen}
	})
}

func (b CodeBlock) handleKeyMsg(msg tea.KeyMsg) (CodeBlock, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Copy):
		return b, b.Copy()
	case b.keys.IsUp(msg):
		b.offset = b.clamp(b.offset - 1)
	case b.keys.IsDown(msg):
		b.offset = b.clamp(b.offset + 1)
	case key.Matches(msg, b.keys.PageUp):
		b.offset = b.clamp(b.offset - b.page())
	case key.Matches(msg, b.keys.PageDown):
		b.offset = b.clamp(b.offset + b.page())
	}
	return b, nil
}

func (b CodeBlock) page() int {
	if b.height <= 1 {
		return 1
	}
	return b.height - 1
}

func (b CodeBlock) clamp(offset int) int {
	if b.height == 0 {
		return 0
	}
	maxOffset := len(b.lines) - b.height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// View renders the title line and the visible code lines.
func (b CodeBlock) View() string {
	var sb strings.Builder

	header := []string{
		b.styles.CodeTitle.Render(b.doc.Title()),
		" ",
		b.styles.Badge.Render(b.doc.ContentType().Label()),
	}
	if b.copied {
		header = append(header, "  ", b.styles.Copied.Render(CopiedLabel))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	sb.WriteString("\n")

	start, end := 0, len(b.lines)
	if b.height > 0 {
		start = b.offset
		end = min(start+b.height, len(b.lines))
	}

	gutter := len(fmt.Sprint(len(b.lines)))
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := b.styles.CodeLine.Render(b.lines[i])
		if b.cfg.LineNumbers {
			num := b.styles.LineNumber.Render(fmt.Sprintf("%*d │", gutter, i+1))
			line = num + " " + line
		}
		rows = append(rows, line)
	}

	frame := b.styles.CodeFrame
	if b.width > 0 {
		frame = frame.MaxWidth(b.width)
	}
	sb.WriteString(frame.Render(strings.Join(rows, "\n")))
	return sb.String()
}
