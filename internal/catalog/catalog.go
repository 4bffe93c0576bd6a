// Package catalog holds the fixed, ordered list of looks shown by the gallery.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmpty       = errors.New("catalog is empty")
	ErrMissingID   = errors.New("catalog item has no id")
	ErrDuplicateID = errors.New("duplicate catalog id")
)

// Item is one showcased look. Items are immutable once part of a Catalog.
type Item struct {
	ID    string `yaml:"id"`
	Image string `yaml:"image"`
	Alt   string `yaml:"alt"`
	Tone  string `yaml:"tone"`
}

// Catalog is a validated, non-empty sequence of items with unique IDs.
type Catalog struct {
	items []Item
	index map[string]int
}

// New validates items and returns a catalog owning a copy of them.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrMissingID)
		}
		if prev, ok := c.index[item.ID]; ok {
			return nil, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateID, item.ID, prev, i)
		}
		c.items[i] = item
		c.index[item.ID] = i
	}
	return c, nil
}

// MustNew is New for literal catalogs known to be valid.
func MustNew(items []Item) *Catalog {
	c, err := New(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at position i. It panics when i is out of range, like a
// slice index.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IndexOf returns the position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	if idx, ok := c.index[id]; ok {
		return idx
	}
	return -1
}

type fileFormat struct {
	Looks []Item `yaml:"looks"`
}

// LoadFile reads a YAML catalog of the form:
//
//	looks:
//	  - id: look-1
//	    image: https://example.com/look-1.jpg
//	    alt: Linen shirt in soft beige
//	    tone: from-white to-amber-50
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Looks)
}
