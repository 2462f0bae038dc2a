package content

import "fmt"

// Stage is one card of the flow diagram.
type Stage struct {
	Key     TopicKey
	Label   string
	Summary string
	Footer  string
	Bullets []string
}

// Validate checks the stage has a known key and a label.
func (s Stage) Validate() error {
	if _, err := ParseTopicKey(string(s.Key)); err != nil || s.Key.IsNone() {
		return fmt.Errorf("%w: key %q", ErrInvalidStage, s.Key)
	}
	if s.Label == "" {
		return fmt.Errorf("%w: %s: label cannot be empty", ErrInvalidStage, s.Key)
	}
	return nil
}

func (s Stage) clone() Stage {
	bullets := make([]string, len(s.Bullets))
	copy(bullets, s.Bullets)
	s.Bullets = bullets
	return s
}
