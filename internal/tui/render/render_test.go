package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/domain/content/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func allDocuments(t *testing.T) []content.Document {
	t.Helper()
	cat, err := embedded.Catalog()
	require.NoError(t, err)

	var docs []content.Document
	for _, p := range cat.Panels() {
		docs = append(docs, p.Documents()...)
	}
	for _, tp := range cat.Topics() {
		docs = append(docs, tp.Documents()...)
	}
	return docs
}

func TestHighlighter_PreservesEveryLine(t *testing.T) {
	t.Parallel()

	h := NewHighlighter("monokai")
	for _, doc := range allDocuments(t) {
		lines := h.Lines(doc)
		raw := doc.Lines()
		require.Len(t, lines, len(raw), doc.Title())
		for i := range raw {
			assert.Equal(t, raw[i], stripANSI(lines[i]), "%s line %d", doc.Title(), i+1)
		}
	}
}

func TestHighlighter_None(t *testing.T) {
	t.Parallel()

	doc, err := content.NewDocument("a", "", "a.yaml", "key: value\nother: 1", content.TypeYAML)
	require.NoError(t, err)

	h := NewHighlighter(StyleNone)
	assert.Equal(t, StyleNone, h.Style())
	assert.Equal(t, []string{"key: value", "other: 1"}, h.Lines(doc))

	assert.Equal(t, StyleNone, NewHighlighter("").Style())
}

func TestHighlighter_CachesAndCopies(t *testing.T) {
	t.Parallel()

	doc, err := content.NewDocument("a", "", "run.sh", "echo one\necho two", content.TypeBash)
	require.NoError(t, err)

	h := NewHighlighter("monokai")
	first := h.Lines(doc)
	first[0] = "mutated"

	second := h.Lines(doc)
	assert.Equal(t, 1, h.CachedCount())
	assert.Equal(t, "echo one", stripANSI(second[0]))
}

func TestHighlighter_UnknownStyleStillRenders(t *testing.T) {
	t.Parallel()

	doc, err := content.NewDocument("a", "", "x", "{\"a\": 1}", content.TypeJSON)
	require.NoError(t, err)

	lines := NewHighlighter("no-such-style").Lines(doc)
	require.Len(t, lines, 1)
	assert.Equal(t, `{"a": 1}`, stripANSI(lines[0]))
}

func TestMarkdown_Render(t *testing.T) {
	t.Parallel()

	md, err := NewMarkdown("notty", 60)
	require.NoError(t, err)
	assert.Equal(t, 60, md.Width())

	out := md.Render("### Pipeline Stages\n\n1. **Lint & Validate**: Check YAML\n")
	assert.Contains(t, out, "Pipeline Stages")
	assert.Contains(t, out, "Lint & Validate")
	assert.False(t, strings.HasSuffix(out, "\n"))

	var nilMD *Markdown
	assert.Equal(t, "raw", nilMD.Render("raw"))
}

func TestSectionsMarkdown(t *testing.T) {
	t.Parallel()

	out := SectionsMarkdown([]content.Section{
		{Title: "Tree", Tree: "├── helm/"},
		{Title: "Stages", Numbered: true, Items: []content.Item{
			{Label: "Lint", Detail: "Check YAML"},
			{Label: "Build"},
		}},
		{Title: "Resources", Items: []content.Item{
			{Label: "MongoDB", Detail: "Version: 4.4.6", Badges: []string{"StatefulSet", "Service"}},
		}},
	})

	assert.Contains(t, out, "### Tree\n\n```text\n├── helm/\n```\n")
	assert.Contains(t, out, "1. **Lint**: Check YAML\n2. **Build**\n")
	assert.Contains(t, out, "- **MongoDB**: Version: 4.4.6 `StatefulSet` `Service`\n")
}

func TestGuideMarkdown(t *testing.T) {
	t.Parallel()

	out := GuideMarkdown(content.Guide{
		Heading: "Getting Started",
		Steps:   []content.GuideStep{{Title: "Clone", Detail: "Clone the repo."}},
	})

	assert.Equal(t, "## Getting Started\n\n1. **Clone**: Clone the repo.\n", out)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Source of\ntruth", Wrap("Source of truth", 10))
	assert.Equal(t, "unchanged text", Wrap("unchanged text", 0))
	assert.Equal(t, []string{"Detects", "config", "changes"}, WrapLines("Detects config changes", 7))
}
