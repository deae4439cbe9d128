package quiz

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

// ErrEmptyCatalog is returned when a catalog has no topics. The game cannot
// start a round without one, so callers treat it as fatal.
var ErrEmptyCatalog = errors.New("quiz: catalog has no topics")

// Catalog is an immutable, non-empty list of topics.
type Catalog struct {
	name   string
	topics []Topic
}

// NewCatalog validates the topics and builds a catalog.
func NewCatalog(name string, topics []Topic) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCatalog, name)
	}

	ids := make(map[string]bool, len(topics))
	for _, t := range topics {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if ids[t.ID] {
			return nil, fmt.Errorf("quiz: duplicate topic id %q in catalog %q", t.ID, name)
		}
		ids[t.ID] = true
	}

	owned := make([]Topic, len(topics))
	for i, t := range topics {
		t.Candidates = append([]string(nil), t.Candidates...)
		owned[i] = t
	}
	return &Catalog{name: name, topics: owned}, nil
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Topics returns a copy of the topic list in catalog order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Get looks up a topic by id.
func (c *Catalog) Get(id string) (Topic, bool) {
	for _, t := range c.topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// PickRandom selects a topic uniformly at random, with replacement.
func (c *Catalog) PickRandom(rng core.Rand) Topic {
	return c.topics[rng.Intn(len(c.topics))]
}
