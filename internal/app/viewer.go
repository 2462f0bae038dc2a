// Package app provides the application logic shared by the CLI and the MCP
// server: catalog queries, document printing and the headless clone run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/amenflux/gitopsview/internal/adapters/logging"
	"github.com/amenflux/gitopsview/internal/domain/action"
	"github.com/amenflux/gitopsview/internal/domain/config"
	"github.com/amenflux/gitopsview/internal/domain/content"
	"github.com/amenflux/gitopsview/internal/ports"
)

// Owner kinds reported in document summaries.
const (
	OwnerPanel = "panel"
	OwnerTopic = "topic"
)

// DocumentSummary describes one document without its content.
type DocumentSummary struct {
	Owner     string `json:"owner"`
	OwnerKind string `json:"owner_kind"`
	ID        string `json:"id"`
	Tab       string `json:"tab"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Lines     int    `json:"lines"`
	Default   bool   `json:"default,omitempty"`
}

// FlowStage is one stage of the GitOps flow with its detail topic title.
type FlowStage struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Summary string   `json:"summary"`
	Footer  string   `json:"footer"`
	Bullets []string `json:"bullets"`
	Topic   string   `json:"topic,omitempty"`
}

// Viewer is the application orchestrator over a content catalog.
type Viewer struct {
	catalog *content.Catalog
	out     io.Writer
	logger  ports.Logger
	now     func() time.Time
}

// New creates a Viewer writing its printed output to out.
func New(catalog *content.Catalog, out io.Writer) *Viewer {
	return &Viewer{
		catalog: catalog,
		out:     out,
		logger:  logging.NewNopLogger(),
		now:     time.Now,
	}
}

// WithLogger sets the logger.
func (v *Viewer) WithLogger(logger ports.Logger) *Viewer {
	v.logger = logging.OrNop(logger)
	return v
}

// WithClock sets the time source used for notifications.
func (v *Viewer) WithClock(now func() time.Time) *Viewer {
	v.now = now
	return v
}

// Catalog returns the underlying catalog.
func (v *Viewer) Catalog() *content.Catalog {
	return v.catalog
}

// Owners returns every panel id followed by every topic key.
func (v *Viewer) Owners() []string {
	var owners []string
	for _, p := range v.catalog.Panels() {
		owners = append(owners, string(p.ID()))
	}
	for _, k := range v.catalog.TopicKeys() {
		owners = append(owners, string(k))
	}
	return owners
}

// ListDocuments summarises the documents of owner, or of every panel and
// topic when owner is empty.
func (v *Viewer) ListDocuments(owner string) ([]DocumentSummary, error) {
	var out []DocumentSummary
	matched := owner == ""

	for _, p := range v.catalog.Panels() {
		if owner != "" && string(p.ID()) != owner {
			continue
		}
		matched = true
		out = append(out, summarise(string(p.ID()), OwnerPanel, p.DocumentSet)...)
	}
	for _, t := range v.catalog.Topics() {
		if owner != "" && string(t.Key()) != owner {
			continue
		}
		matched = true
		out = append(out, summarise(string(t.Key()), OwnerTopic, t.DocumentSet)...)
	}

	if !matched {
		return nil, config.NewPanelNotFoundError(owner, v.Owners())
	}
	return out, nil
}

func summarise(owner, kind string, set content.DocumentSet) []DocumentSummary {
	out := make([]DocumentSummary, 0, set.Len())
	for _, d := range set.Documents() {
		out = append(out, DocumentSummary{
			Owner:     owner,
			OwnerKind: kind,
			ID:        d.ID(),
			Tab:       d.Tab(),
			Title:     d.Title(),
			Type:      d.ContentType().String(),
			Lines:     len(d.Lines()),
			Default:   d.ID() == set.DefaultTab(),
		})
	}
	return out
}

// Document resolves owner and id to a document. An empty id selects the
// owner's default tab.
func (v *Viewer) Document(owner, id string) (content.Document, error) {
	set, ok := v.documentSet(owner)
	if !ok {
		return content.Document{}, config.NewPanelNotFoundError(owner, v.Owners())
	}
	if id == "" {
		id = set.DefaultTab()
	}

	doc, err := v.catalog.Document(owner, id)
	if err != nil {
		ids := make([]string, 0, set.Len())
		for _, d := range set.Documents() {
			ids = append(ids, d.ID())
		}
		return content.Document{}, config.NewDocumentNotFoundError(owner, id, ids).WithUnderlying(err)
	}
	return doc, nil
}

func (v *Viewer) documentSet(owner string) (content.DocumentSet, bool) {
	if p, ok := v.catalog.Panel(content.PanelID(owner)); ok {
		return p.DocumentSet, true
	}
	if key, err := content.ParseTopicKey(owner); err == nil {
		if t, ok := v.catalog.Topic(key); ok {
			return t.DocumentSet, true
		}
	}
	return content.DocumentSet{}, false
}

// Flow returns the stages in pipeline order.
func (v *Viewer) Flow() []FlowStage {
	stages := v.catalog.Stages()
	out := make([]FlowStage, 0, len(stages))
	for _, s := range stages {
		fs := FlowStage{
			Key:     string(s.Key),
			Label:   s.Label,
			Summary: s.Summary,
			Footer:  s.Footer,
			Bullets: append([]string{}, s.Bullets...),
		}
		if t, ok := v.catalog.Topic(s.Key); ok {
			fs.Topic = t.Title()
		}
		out = append(out, fs)
	}
	return out
}

// Clone validates url and runs the simulated clone to completion, then
// delivers the success notification. Validation failures return the
// action.ValidationError unchanged.
func (v *Viewer) Clone(ctx context.Context, url string, sim action.Simulator, notifier ports.Notifier) (ports.Notification, error) {
	act, err := action.New()
	if err != nil {
		return ports.Notification{}, fmt.Errorf("failed to start clone action: %w", err)
	}
	defer act.Stop()

	act.SetInput(url)
	target, err := act.Confirm()
	if err != nil {
		return ports.Notification{}, err
	}

	v.logger.Info(ctx, "simulated clone started", ports.F("repository", target))
	session := act.Session()
	act.Complete(session, sim.Run(ctx, target))

	if act.State() != action.StateSuccess {
		err := act.Err()
		if err == nil {
			err = errors.New("clone did not complete")
		}
		v.logger.Warn(ctx, "simulated clone failed", ports.Err(err))
		return ports.Notification{}, fmt.Errorf("clone failed: %w", err)
	}

	n := action.SuccessNotification(v.now())
	act.Reset(session)

	if notifier != nil {
		if err := notifier.Notify(ctx, n); err != nil {
			return n, fmt.Errorf("failed to deliver notification: %w", err)
		}
	}
	return n, nil
}
