package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentType is the display hint attached to a document. It never changes
// the document text.
type ContentType string

// Known content types.
const (
	TypeYAML       ContentType = "yaml"
	TypeBash       ContentType = "bash"
	TypeJavaScript ContentType = "javascript"
	TypeJSON       ContentType = "json"
	TypeDockerfile ContentType = "dockerfile"
	// TypeText is used for plain trees and listings embedded in topics.
	TypeText ContentType = "text"
)

var contentTypeLabels = map[ContentType]string{
	TypeYAML:       "YAML",
	TypeJSON:       "JSON",
	TypeJavaScript: "JavaScript",
}

// ParseContentType parses a content type name.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	switch ct {
	case TypeYAML, TypeBash, TypeJavaScript, TypeJSON, TypeDockerfile, TypeText:
		return ct, nil
	case "yml":
		return TypeYAML, nil
	case "sh", "shell":
		return TypeBash, nil
	case "js":
		return TypeJavaScript, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownContentType, s)
	}
}

// String returns the content type name.
func (c ContentType) String() string {
	return string(c)
}

// Label returns a human-readable name for badges.
func (c ContentType) Label() string {
	if label, ok := contentTypeLabels[c]; ok {
		return label
	}
	return cases.Title(language.English).String(string(c))
}

// Lexer returns the syntax highlighter lexer name for the type.
func (c ContentType) Lexer() string {
	switch c {
	case TypeDockerfile:
		return "docker"
	case TypeText:
		return "plaintext"
	default:
		return string(c)
	}
}
