package content

import (
	"fmt"
	"sort"
)

// Catalog is the aggregate root for all static content. It is built once at
// startup and only read afterwards.
type Catalog struct {
	page   Page
	guide  Guide
	stages []Stage
	panels []Panel
	topics map[TopicKey]Topic
}

// NewCatalog creates an empty catalog with the given page text.
func NewCatalog(page Page, guide Guide) (*Catalog, error) {
	if err := validateVersion(page.Version); err != nil {
		return nil, err
	}
	steps := make([]GuideStep, len(guide.Steps))
	copy(steps, guide.Steps)
	guide.Steps = steps

	return &Catalog{
		page:   page,
		guide:  guide,
		topics: make(map[TopicKey]Topic),
	}, nil
}

// AddStage appends a flow stage.
func (c *Catalog) AddStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	for _, s := range c.stages {
		if s.Key == stage.Key {
			return fmt.Errorf("%w: duplicate key %s", ErrInvalidStage, stage.Key)
		}
	}
	c.stages = append(c.stages, stage.clone())
	return nil
}

// AddPanel appends a component panel.
func (c *Catalog) AddPanel(panel Panel) error {
	if panel.IsZero() {
		return ErrInvalidPanel
	}
	if _, ok := c.Panel(panel.ID()); ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePanel, panel.ID())
	}
	c.panels = append(c.panels, panel)
	return nil
}

// AddTopic registers the detail topic for a key.
func (c *Catalog) AddTopic(topic Topic) error {
	if topic.IsZero() {
		return ErrInvalidTopic
	}
	if _, exists := c.topics[topic.Key()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTopic, topic.Key())
	}
	c.topics[topic.Key()] = topic
	return nil
}

// Page returns the page text.
func (c *Catalog) Page() Page { return c.page }

// Guide returns a copy of the getting-started guide.
func (c *Catalog) Guide() Guide {
	g := c.guide
	g.Steps = make([]GuideStep, len(c.guide.Steps))
	copy(g.Steps, c.guide.Steps)
	return g
}

// Stages returns the flow stages in order.
func (c *Catalog) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	for i, s := range c.stages {
		out[i] = s.clone()
	}
	return out
}

// Panels returns the component panels in order.
func (c *Catalog) Panels() []Panel {
	out := make([]Panel, len(c.panels))
	copy(out, c.panels)
	return out
}

// Panel finds a panel by id.
func (c *Catalog) Panel(id PanelID) (Panel, bool) {
	for _, p := range c.panels {
		if p.ID() == id {
			return p, true
		}
	}
	return Panel{}, false
}

// PanelIndex returns the position of id, or -1.
func (c *Catalog) PanelIndex(id PanelID) int {
	for i, p := range c.panels {
		if p.ID() == id {
			return i
		}
	}
	return -1
}

// Topic looks up the topic for key. TopicNone and unmapped keys report false.
func (c *Catalog) Topic(key TopicKey) (Topic, bool) {
	t, ok := c.topics[key]
	return t, ok
}

// TopicKeys returns the mapped keys sorted in flow order.
func (c *Catalog) TopicKeys() []TopicKey {
	order := make(map[TopicKey]int)
	for i, k := range TopicKeys() {
		order[k] = i
	}
	keys := make([]TopicKey, 0, len(c.topics))
	for k := range c.topics {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return order[keys[i]] < order[keys[j]] })
	return keys
}

// Topics returns every mapped topic in flow order.
func (c *Catalog) Topics() []Topic {
	keys := c.TopicKeys()
	out := make([]Topic, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.topics[k])
	}
	return out
}

// Document resolves a document by owner and id. owner is a panel id or a
// topic key; panels are searched first.
func (c *Catalog) Document(owner, id string) (Document, error) {
	if panel, ok := c.Panel(PanelID(owner)); ok {
		if doc, ok := panel.Document(id); ok {
			return doc, nil
		}
		return Document{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, owner, id)
	}
	if topic, ok := c.Topic(TopicKey(owner)); ok {
		if doc, ok := topic.Document(id); ok {
			return doc, nil
		}
		return Document{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, owner, id)
	}
	return Document{}, fmt.Errorf("%w: %s", ErrPanelNotFound, owner)
}

// Validate checks cross references: the default panel exists and every
// stage opens a mapped topic.
func (c *Catalog) Validate() error {
	if c.page.DefaultPanel != "" {
		if _, ok := c.Panel(c.page.DefaultPanel); !ok {
			return fmt.Errorf("%w: default panel %s", ErrPanelNotFound, c.page.DefaultPanel)
		}
	}
	for _, s := range c.stages {
		if _, ok := c.topics[s.Key]; !ok {
			return fmt.Errorf("%w: stage %s", ErrTopicNotFound, s.Key)
		}
	}
	return nil
}
