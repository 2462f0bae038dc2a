package components

import (
	"strings"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/tui/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Documents is a tab row over a document set with one CodeBlock per
// document. Blocks are built once, so switching tabs never re-renders or
// alters content.
type Documents struct {
	set    content.DocumentSet
	tabs   Tabs
	blocks []CodeBlock
	keys   ui.KeyMap
}

// NewDocuments creates the tabbed view with the set's default tab active.
func NewDocuments(set content.DocumentSet, cfg BlockConfig) Documents {
	labels := make([]string, 0, set.Len())
	blocks := make([]CodeBlock, 0, set.Len())
	for _, doc := range set.Documents() {
		labels = append(labels, doc.Tab())
		blocks = append(blocks, NewCodeBlock(doc, cfg))
	}
	return Documents{
		set:    set,
		tabs:   NewTabs(labels...).Select(set.DefaultIndex()),
		blocks: blocks,
		keys:   ui.DefaultKeyMap(),
	}
}

// Len returns the number of documents.
func (d Documents) Len() int {
	return len(d.blocks)
}

// ActiveIndex returns the active tab index.
func (d Documents) ActiveIndex() int {
	return d.tabs.Active()
}

// Active returns the displayed document, or the zero Document when empty.
func (d Documents) Active() content.Document {
	if len(d.blocks) == 0 {
		return content.Document{}
	}
	return d.blocks[d.tabs.Active()].Document()
}

// ActiveBlock returns the displayed block.
func (d Documents) ActiveBlock() (CodeBlock, bool) {
	if len(d.blocks) == 0 {
		return CodeBlock{}, false
	}
	return d.blocks[d.tabs.Active()], true
}

// Tabs returns the tab row.
func (d Documents) Tabs() Tabs {
	return d.tabs
}

// SelectTab activates the document with id. Unknown ids are ignored.
func (d Documents) SelectTab(id string) Documents {
	if i := d.set.IndexOf(id); i >= 0 {
		d.tabs = d.tabs.Select(i)
	}
	return d
}

// Next activates the following tab.
func (d Documents) Next() Documents {
	d.tabs = d.tabs.Next()
	return d
}

// Prev activates the preceding tab.
func (d Documents) Prev() Documents {
	d.tabs = d.tabs.Prev()
	return d
}

// WithHeight sets the visible line count of every block.
func (d Documents) WithHeight(height int) Documents {
	d.blocks = d.mapBlocks(func(b CodeBlock) CodeBlock { return b.WithHeight(height) })
	return d
}

// WithWidth sets the maximum width of every block.
func (d Documents) WithWidth(width int) Documents {
	d.blocks = d.mapBlocks(func(b CodeBlock) CodeBlock { return b.WithWidth(width) })
	return d
}

// WithStyles sets the styles.
func (d Documents) WithStyles(styles ui.Styles) Documents {
	d.tabs = d.tabs.WithStyles(styles)
	d.blocks = d.mapBlocks(func(b CodeBlock) CodeBlock { return b.WithStyles(styles) })
	return d
}

func (d Documents) mapBlocks(fn func(CodeBlock) CodeBlock) []CodeBlock {
	out := make([]CodeBlock, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = fn(b)
	}
	return out
}

// Update switches tabs on [ and ], sends other keys to the active block and
// every other message to all blocks.
func (d Documents) Update(msg tea.Msg) (Documents, tea.Cmd) {
	if len(d.blocks) == 0 {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, d.keys.NextTab):
			return d.Next(), nil
		case key.Matches(msg, d.keys.PrevTab):
			return d.Prev(), nil
		}
		i := d.tabs.Active()
		blocks := append([]CodeBlock(nil), d.blocks...)
		var cmd tea.Cmd
		blocks[i], cmd = blocks[i].Update(msg)
		d.blocks = blocks
		return d, cmd
	}

	blocks := make([]CodeBlock, len(d.blocks))
	cmds := make([]tea.Cmd, 0, len(d.blocks))
	for i, b := range d.blocks {
		var cmd tea.Cmd
		blocks[i], cmd = b.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	d.blocks = blocks
	if len(cmds) == 0 {
		return d, nil
	}
	return d, tea.Batch(cmds...)
}

// View renders the tab row, omitted for a single document, and the active
// block.
func (d Documents) View() string {
	block, ok := d.ActiveBlock()
	if !ok {
		return ""
	}
	var sb strings.Builder
	if d.tabs.Len() > 1 {
		sb.WriteString(d.tabs.View())
		sb.WriteString("\n")
	}
	sb.WriteString(block.View())
	return sb.String()
}
