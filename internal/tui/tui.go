// Package tui provides the terminal user interface entry point for the
// GitOps docs viewer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/amenflux/gitopsview/internal/tui/components"
	"github.com/amenflux/gitopsview/internal/tui/render"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoCatalog is returned when the viewer is started without content.
var ErrNoCatalog = errors.New("viewer requires a content catalog")

// ViewerOptions configures the viewer.
type ViewerOptions struct {
	Catalog  *content.Catalog
	Blocks   components.BlockConfig
	Dialog   components.DialogConfig
	Markdown *render.Markdown
	Notifier ports.Notifier
	Logger   ports.Logger

	// ToastDuration is how long notifications stay visible.
	ToastDuration time.Duration

	// InitialPanel selects a component panel instead of the page default.
	InitialPanel content.PanelID
	// InitialTopic opens the detail modal on start.
	InitialTopic content.TopicKey
}

// ViewerResult holds the outcome of a viewer session.
type ViewerResult struct {
	Notifications int
	Cancelled     bool
}

// RunViewer runs the viewer until the user quits or ctx is done.
func RunViewer(ctx context.Context, opts ViewerOptions) (*ViewerResult, error) {
	if opts.Catalog == nil {
		return nil, ErrNoCatalog
	}

	model := newPageModel(opts)
	defer model.dialog.Stop()

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("viewer failed: %w", err)
	}

	m, ok := finalModel.(pageModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	return &ViewerResult{
		Notifications: m.notified,
		Cancelled:     m.cancelled,
	}, nil
}
