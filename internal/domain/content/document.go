package content

import (
	"fmt"
	"strings"
)

// Document is one named static text artifact. It is an immutable value
// object: the content is kept byte for byte as loaded.
type Document struct {
	id          string
	tab         string
	title       string
	content     string
	contentType ContentType
}

// NewDocument creates a Document. id and title are required; tab defaults
// to the title.
func NewDocument(id, tab, title, text string, contentType ContentType) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("%w: id cannot be empty", ErrInvalidDocument)
	}
	if title == "" {
		return Document{}, fmt.Errorf("%w: %s: title cannot be empty", ErrInvalidDocument, id)
	}
	if tab == "" {
		tab = title
	}
	return Document{
		id:          id,
		tab:         tab,
		title:       title,
		content:     text,
		contentType: contentType,
	}, nil
}

// ID returns the document identifier, unique within its panel or topic.
func (d Document) ID() string { return d.id }

// Tab returns the tab label.
func (d Document) Tab() string { return d.tab }

// Title returns the code block title.
func (d Document) Title() string { return d.title }

// Content returns the document text verbatim.
func (d Document) Content() string { return d.content }

// ContentType returns the display hint.
func (d Document) ContentType() ContentType { return d.contentType }

// Lines splits the content on newlines. Joining the result with "\n"
// yields Content() exactly.
func (d Document) Lines() []string {
	return strings.Split(d.content, "\n")
}

// IsZero reports whether d is the zero value.
func (d Document) IsZero() bool { return d.id == "" }

// DocumentSet is an ordered list of documents with a default tab.
type DocumentSet struct {
	docs       []Document
	defaultTab string
}

// NewDocumentSet validates docs and defaultTab. An empty defaultTab selects
// the first document.
func NewDocumentSet(docs []Document, defaultTab string) (DocumentSet, error) {
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if d.IsZero() {
			return DocumentSet{}, ErrInvalidDocument
		}
		if _, dup := seen[d.id]; dup {
			return DocumentSet{}, fmt.Errorf("%w: %s", ErrDuplicateDocument, d.id)
		}
		seen[d.id] = struct{}{}
	}
	if defaultTab != "" {
		if _, ok := seen[defaultTab]; !ok {
			return DocumentSet{}, fmt.Errorf("%w: default tab %s", ErrDocumentNotFound, defaultTab)
		}
	} else if len(docs) > 0 {
		defaultTab = docs[0].id
	}

	out := make([]Document, len(docs))
	copy(out, docs)
	return DocumentSet{docs: out, defaultTab: defaultTab}, nil
}

// Len returns the number of documents.
func (s DocumentSet) Len() int { return len(s.docs) }

// At returns the document at index i.
func (s DocumentSet) At(i int) Document { return s.docs[i] }

// Documents returns a copy of the ordered documents.
func (s DocumentSet) Documents() []Document {
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Document finds a document by id.
func (s DocumentSet) Document(id string) (Document, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return Document{}, false
	}
	return s.docs[i], true
}

// IndexOf returns the position of id, or -1.
func (s DocumentSet) IndexOf(id string) int {
	for i, d := range s.docs {
		if d.id == id {
			return i
		}
	}
	return -1
}

// DefaultTab returns the id of the initially selected document.
func (s DocumentSet) DefaultTab() string { return s.defaultTab }

// DefaultIndex returns the index of DefaultTab, or 0.
func (s DocumentSet) DefaultIndex() int {
	if i := s.IndexOf(s.defaultTab); i >= 0 {
		return i
	}
	return 0
}
