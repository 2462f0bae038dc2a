package render

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap breaks text at word boundaries to fit width columns. Width <= 0
// returns text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.WrapString(text, uint(width))
}

// WrapLines is Wrap split into lines.
func WrapLines(text string, width int) []string {
	return strings.Split(Wrap(text, width), "\n")
}
