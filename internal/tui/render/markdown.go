package render

import (
	"fmt"
	"strings"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/charmbracelet/glamour"
)

// Markdown renders prose blocks with a fixed glamour style.
type Markdown struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// NewMarkdown creates a renderer for a glamour standard style wrapped at
// width columns.
func NewMarkdown(style string, width int) (*Markdown, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Markdown{renderer: r, style: style, width: width}, nil
}

// Width returns the wrap width.
func (m *Markdown) Width() int { return m.width }

// Render renders md, returning it unchanged if glamour fails.
func (m *Markdown) Render(md string) string {
	if m == nil || m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// SectionsMarkdown writes topic sections as markdown: a heading per
// section, numbered or bulleted items with badges, and trees as fenced text.
func SectionsMarkdown(sections []content.Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s\n\n", s.Title)
		if s.Tree != "" {
			b.WriteString("```text\n")
			b.WriteString(s.Tree)
			b.WriteString("\n```\n")
		}
		for j, it := range s.Items {
			marker := "-"
			if s.Numbered {
				marker = fmt.Sprintf("%d.", j+1)
			}
			fmt.Fprintf(&b, "%s **%s**", marker, it.Label)
			if it.Detail != "" {
				fmt.Fprintf(&b, ": %s", it.Detail)
			}
			for _, badge := range it.Badges {
				fmt.Fprintf(&b, " `%s`", badge)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// GuideMarkdown writes the getting-started guide as a numbered list.
func GuideMarkdown(g content.Guide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", g.Heading)
	for i, s := range g.Steps {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, s.Title, s.Detail)
	}
	return b.String()
}
