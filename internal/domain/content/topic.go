package content

import (
	"fmt"
	"strings"
)

// TopicKey identifies a flow stage and the detail topic it opens.
type TopicKey string

// Topic keys. TopicNone is the zero value and maps to no topic.
const (
	TopicNone       TopicKey = ""
	TopicGit        TopicKey = "git"
	TopicCICD       TopicKey = "cicd"
	TopicArgoCD     TopicKey = "argocd"
	TopicKubernetes TopicKey = "kubernetes"
)

// TopicKeys returns the closed set of topic keys in flow order.
func TopicKeys() []TopicKey {
	return []TopicKey{TopicGit, TopicCICD, TopicArgoCD, TopicKubernetes}
}

// ParseTopicKey parses a topic key. The empty string is TopicNone.
func ParseTopicKey(s string) (TopicKey, error) {
	key := TopicKey(strings.ToLower(strings.TrimSpace(s)))
	if key == TopicNone {
		return TopicNone, nil
	}
	for _, k := range TopicKeys() {
		if k == key {
			return key, nil
		}
	}
	return TopicNone, fmt.Errorf("%w: %q", ErrUnknownTopic, s)
}

// String returns the key.
func (k TopicKey) String() string { return string(k) }

// IsNone reports whether k is TopicNone.
func (k TopicKey) IsNone() bool { return k == TopicNone }

// Item is one labelled line in a topic section.
type Item struct {
	Label  string
	Detail string
	Badges []string
}

// Section is a block of descriptive text inside a topic: either a list of
// items or a preformatted tree.
type Section struct {
	Title    string
	Numbered bool
	Items    []Item
	Tree     string
}

// Topic is the content shown by the detail modal for one stage.
type Topic struct {
	DocumentSet
	key         TopicKey
	title       string
	description string
	sections    []Section
}

// NewTopic creates a Topic.
func NewTopic(key TopicKey, title, description string, sections []Section, docs DocumentSet) (Topic, error) {
	if key.IsNone() {
		return Topic{}, fmt.Errorf("%w: key cannot be empty", ErrInvalidTopic)
	}
	if title == "" {
		return Topic{}, fmt.Errorf("%w: %s: title cannot be empty", ErrInvalidTopic, key)
	}
	return Topic{
		DocumentSet: docs,
		key:         key,
		title:       title,
		description: description,
		sections:    cloneSections(sections),
	}, nil
}

// Key returns the topic key.
func (t Topic) Key() TopicKey { return t.key }

// Title returns the modal title.
func (t Topic) Title() string { return t.title }

// Description returns the modal subtitle.
func (t Topic) Description() string { return t.description }

// Sections returns a copy of the descriptive sections.
func (t Topic) Sections() []Section { return cloneSections(t.sections) }

// IsZero reports whether t is the zero value.
func (t Topic) IsZero() bool { return t.key.IsNone() }

func cloneSections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		items := make([]Item, len(s.Items))
		for j, it := range s.Items {
			badges := make([]string, len(it.Badges))
			copy(badges, it.Badges)
			items[j] = Item{Label: it.Label, Detail: it.Detail, Badges: badges}
		}
		out[i] = Section{Title: s.Title, Numbered: s.Numbered, Items: items, Tree: s.Tree}
	}
	return out
}
