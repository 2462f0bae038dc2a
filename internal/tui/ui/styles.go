// Package ui provides shared styles, key bindings, and messages for TUI components.
package ui

import (
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Catppuccin Mocha inspired).
var (
	ColorPrimary    = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
	ColorSecondary  = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#cba6f7"} // Mauve
	ColorSuccess    = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	ColorWarning    = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // Yellow
	ColorError      = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
	ColorText       = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"} // Text
	ColorSubtle     = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#a6adc8"} // Subtext0
	ColorBackground = lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"} // Base
	ColorSurface    = lipgloss.AdaptiveColor{Light: "#e6e9ef", Dark: "#313244"} // Surface0
	ColorPeach      = lipgloss.AdaptiveColor{Light: "#fe640b", Dark: "#fab387"} // Peach
	ColorTeal       = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94e2d5"} // Teal
)

// stageColors gives each flow stage its own accent.
var stageColors = map[content.TopicKey]lipgloss.AdaptiveColor{
	content.TopicGit:        ColorPeach,
	content.TopicCICD:       ColorSecondary,
	content.TopicArgoCD:     ColorTeal,
	content.TopicKubernetes: ColorPrimary,
}

// StageColor returns the accent for a stage, ColorMuted if unknown.
func StageColor(key content.TopicKey) lipgloss.AdaptiveColor {
	if c, ok := stageColors[key]; ok {
		return c
	}
	return ColorMuted
}

// Styles contains reusable lipgloss styles for the TUI.
type Styles struct {
	// Base styles
	App       lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Paragraph lipgloss.Style
	Heading   lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Header
	Brand lipgloss.Style
	Badge lipgloss.Style

	// Interactive elements
	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Code blocks
	CodeTitle  lipgloss.Style
	CodeFrame  lipgloss.Style
	LineNumber lipgloss.Style
	CodeLine   lipgloss.Style
	Copied     lipgloss.Style

	// Flow cards
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Arrow       lipgloss.Style

	// Overlays
	Modal  lipgloss.Style
	Toast  lipgloss.Style
	Notice lipgloss.Style

	// Panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	// Progress
	Spinner lipgloss.Style
}

// DefaultStyles returns the default TUI styles.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		Paragraph: lipgloss.NewStyle().
			Foreground(ColorText),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTeal),

		Badge: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorBackground).
			Background(ColorSubtle),

		Button: button.
			Foreground(ColorText).
			Background(ColorSurface).
			BorderForeground(ColorMuted),

		ButtonActive: button.
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			BorderForeground(ColorPrimary),

		ButtonDisabled: button.
			Foreground(ColorMuted).
			Background(ColorSurface).
			BorderForeground(ColorMuted),

		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorSubtle),

		TabActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary),

		CodeTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		CodeFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurface).
			Padding(0, 1),

		LineNumber: lipgloss.NewStyle().
			Foreground(ColorMuted),

		CodeLine: lipgloss.NewStyle().
			Foreground(ColorText),

		Copied: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess),

		Card: card,

		CardFocused: card.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(ColorPrimary),

		Arrow: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(0, 1),

		Notice: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorWarning).
			PaddingLeft(1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorPrimary),
	}
}

// StageCard returns the card style for a stage, accented when focused.
func (s Styles) StageCard(key content.TopicKey, focused bool) lipgloss.Style {
	if focused {
		return s.CardFocused.BorderForeground(StageColor(key))
	}
	return s.Card
}

// WithWidth returns styles adapted for a specific terminal width.
func (s Styles) WithWidth(width int) Styles {
	s.Panel = s.Panel.Width(width - 4)
	s.App = s.App.Width(width)
	return s
}
