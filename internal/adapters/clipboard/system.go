// Package clipboard bridges ports.Clipboard to the operating system
// clipboard through atotto/clipboard.
package clipboard

import (
	"context"
	"fmt"

	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/atotto/clipboard"
)

// System writes to the OS clipboard.
type System struct {
	write       func(string) error
	unsupported func() bool
}

// NewSystem creates a clipboard backed by the OS.
func NewSystem() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// WriteText puts text on the clipboard. It returns an error wrapping
// ports.ErrClipboardUnavailable when no clipboard utility can be reached.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.unsupported() {
		return fmt.Errorf("%w: no clipboard utility found", ports.ErrClipboardUnavailable)
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrClipboardUnavailable, err)
	}
	return nil
}

var _ ports.Clipboard = (*System)(nil)
