package components

import (
	"testing"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/domain/content/embedded"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and any batch it expands to, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := embedded.Catalog()
	require.NoError(t, err)
	return cat
}

func testDocument(t *testing.T, id, text string) content.Document {
	t.Helper()
	doc, err := content.NewDocument(id, id, id+".yaml", text, content.TypeYAML)
	require.NoError(t, err)
	return doc
}

func testSet(t *testing.T, docs ...content.Document) content.DocumentSet {
	t.Helper()
	set, err := content.NewDocumentSet(docs, "")
	require.NoError(t, err)
	return set
}
