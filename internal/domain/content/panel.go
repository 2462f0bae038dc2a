package content

import "fmt"

// PanelID identifies a component panel.
type PanelID string

// Notice is a highlighted call-out shown above a panel's documents.
type Notice struct {
	Title string
	Text  string
}

// Panel groups the documents of one project component behind a tab bar.
type Panel struct {
	DocumentSet
	id          PanelID
	label       string
	title       string
	description string
	notice      *Notice
}

// NewPanel creates a Panel. A panel without documents is invalid.
func NewPanel(id PanelID, label, title, description string, notice *Notice, docs DocumentSet) (Panel, error) {
	if id == "" {
		return Panel{}, fmt.Errorf("%w: id cannot be empty", ErrInvalidPanel)
	}
	if docs.Len() == 0 {
		return Panel{}, fmt.Errorf("%w: %s has no documents", ErrInvalidPanel, id)
	}
	if label == "" {
		label = title
	}
	var n *Notice
	if notice != nil {
		copied := *notice
		n = &copied
	}
	return Panel{
		DocumentSet: docs,
		id:          id,
		label:       label,
		title:       title,
		description: description,
		notice:      n,
	}, nil
}

// ID returns the panel identifier.
func (p Panel) ID() PanelID { return p.id }

// Label returns the selector label.
func (p Panel) Label() string { return p.label }

// Title returns the panel heading.
func (p Panel) Title() string { return p.title }

// Description returns the panel subtitle.
func (p Panel) Description() string { return p.description }

// Notice returns the panel call-out, if any.
func (p Panel) Notice() (Notice, bool) {
	if p.notice == nil {
		return Notice{}, false
	}
	return *p.notice, true
}

// IsZero reports whether p is the zero value.
func (p Panel) IsZero() bool { return p.id == "" }
