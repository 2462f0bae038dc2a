// Package render turns static content into terminal text: syntax
// highlighted code lines, glamour markdown and wrapped prose.
package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/patrickmn/go-cache"
)

// StyleNone disables syntax colouring.
const StyleNone = "none"

// Highlighter colours document lines. Output always has exactly one entry
// per source line, and stripping the escape codes gives the source back.
type Highlighter struct {
	style     *chroma.Style
	styleName string
	formatter chroma.Formatter
	cache     *cache.Cache
}

// NewHighlighter creates a highlighter for a chroma style name. Unknown
// names fall back to chroma's default style; StyleNone or "" disables
// colouring.
func NewHighlighter(styleName string) *Highlighter {
	h := &Highlighter{
		styleName: styleName,
		// No expiry and no janitor goroutine: the content set is fixed.
		cache: cache.New(cache.NoExpiration, 0),
	}
	if styleName == "" || styleName == StyleNone {
		h.styleName = StyleNone
		return h
	}
	h.style = styles.Get(styleName)
	h.formatter = formatters.Get("terminal256")
	return h
}

// Style returns the active style name.
func (h *Highlighter) Style() string {
	return h.styleName
}

// Lines returns the rendered lines of doc.
func (h *Highlighter) Lines(doc content.Document) []string {
	raw := doc.Lines()
	if h.style == nil || h.formatter == nil {
		return raw
	}

	key := cacheKey(h.styleName, doc)
	if cached, ok := h.cache.Get(key); ok {
		return cloneLines(cached.([]string))
	}

	lines, err := h.highlight(doc.ContentType().Lexer(), doc.Content())
	if err != nil || len(lines) != len(raw) {
		lines = raw
	}
	h.cache.Set(key, lines, cache.NoExpiration)
	return cloneLines(lines)
}

// CachedCount returns how many documents have been highlighted.
func (h *Highlighter) CachedCount() int {
	return h.cache.ItemCount()
}

func (h *Highlighter) highlight(lexerName, text string) ([]string, error) {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", lexerName, err)
	}

	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())
	out := make([]string, 0, len(tokenLines))
	var buf bytes.Buffer
	for _, line := range tokenLines {
		buf.Reset()
		if err := h.formatter.Format(&buf, h.style, chroma.Literator(line...)); err != nil {
			return nil, fmt.Errorf("format %s: %w", lexerName, err)
		}
		out = append(out, strings.ReplaceAll(buf.String(), "\n", ""))
	}
	return out, nil
}

func cacheKey(style string, doc content.Document) string {
	sum := fnv.New64a()
	_, _ = sum.Write([]byte(doc.Content()))
	return fmt.Sprintf("%s/%s/%x", style, doc.ContentType(), sum.Sum64())
}

func cloneLines(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
