package ports

import (
	"context"
	"errors"
)

// ErrClipboardUnavailable is returned when the platform offers no clipboard
// (headless session, missing xclip/xsel/wl-copy, denied access).
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a plain function to the Clipboard interface.
type ClipboardFunc func(ctx context.Context, text string) error

// WriteText calls f(ctx, text).
func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}
