package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap contains all key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Vim-style navigation
	VimUp    key.Binding
	VimDown  key.Binding
	VimLeft  key.Binding
	VimRight key.Binding

	// Focus
	NextFocus key.Binding
	PrevFocus key.Binding
	Panel     key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Selection
	Select key.Binding
	Cancel key.Binding

	// Actions
	Copy  key.Binding
	Clone key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous stage"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next stage"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),

		VimUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "up"),
		),
		VimDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "down"),
		),
		VimLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "left"),
		),
		VimRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "right"),
		),

		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Panel: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "select component"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous tab"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open details"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Clone: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "clone to GitHub"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// IsUp returns true if the key message matches an up navigation key.
func (k KeyMap) IsUp(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Up) || key.Matches(msg, k.VimUp)
}

// IsDown returns true if the key message matches a down navigation key.
func (k KeyMap) IsDown(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Down) || key.Matches(msg, k.VimDown)
}

// IsLeft returns true if the key message matches a left navigation key.
func (k KeyMap) IsLeft(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Left) || key.Matches(msg, k.VimLeft)
}

// IsRight returns true if the key message matches a right navigation key.
func (k KeyMap) IsRight(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Right) || key.Matches(msg, k.VimRight)
}

// PanelIndex returns the zero-based panel for a 1-4 key, or -1.
func (k KeyMap) PanelIndex(msg tea.KeyMsg) int {
	if !key.Matches(msg, k.Panel) {
		return -1
	}
	return int(msg.String()[0] - '1')
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Panel, k.NextTab, k.Copy, k.Clone, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Panel},
		{k.Left, k.Right, k.Select},
		{k.PrevTab, k.NextTab, k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Copy, k.Clone, k.Cancel, k.Help, k.Quit},
	}
}
