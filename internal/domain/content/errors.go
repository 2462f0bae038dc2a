// Package content models the static documentation shown by the viewer:
// documents, the component panels that group them, the flow stages and the
// topics a stage opens. Everything here is immutable once loaded.
package content

import "errors"

// Content errors.
var (
	ErrUnknownContentType = errors.New("unknown content type")
	ErrUnknownTopic       = errors.New("unknown topic")
	ErrInvalidDocument    = errors.New("document is invalid")
	ErrDuplicateDocument  = errors.New("document already exists")
	ErrInvalidPanel       = errors.New("panel is invalid")
	ErrDuplicatePanel     = errors.New("panel already exists")
	ErrInvalidTopic       = errors.New("topic is invalid")
	ErrDuplicateTopic     = errors.New("topic already exists")
	ErrInvalidStage       = errors.New("stage is invalid")
	ErrPanelNotFound      = errors.New("panel not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrDocumentNotFound   = errors.New("document not found")
)
