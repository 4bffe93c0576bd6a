// Package gallery owns the selection index of the showcase. The Controller is
// the only writer of the index; renderers read it through Index and Current.
package gallery

import (
	"github.com/atomicstack/lookbook/internal/catalog"
	"github.com/atomicstack/lookbook/internal/cue"
	"github.com/atomicstack/lookbook/internal/logging/events"
)

// Controller tracks which catalog item is active.
type Controller struct {
	catalog *catalog.Catalog
	index   int
	cue     cue.Cue
}

// Option configures a Controller.
type Option func(*Controller)

// WithCue installs the feedback played on Advance. A nil cue keeps the no-op
// default.
func WithCue(c cue.Cue) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.cue = c
		}
	}
}

// New returns a controller positioned on the first item. The catalog must be
// non-empty; catalog.New guarantees that for any catalog it returns.
func New(c *catalog.Catalog, opts ...Option) *Controller {
	if c.Len() == 0 {
		panic("gallery: empty catalog")
	}
	ctl := &Controller{catalog: c, cue: cue.Nop{}}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

// Catalog returns the catalog being shown.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Index returns the active position.
func (c *Controller) Index() int {
	return c.index
}

// Current returns the active item.
func (c *Controller) Current() catalog.Item {
	return c.catalog.At(c.index)
}

// Len returns the catalog size.
func (c *Controller) Len() int {
	return c.catalog.Len()
}

// Position returns the 1-based position of the active item and the total.
func (c *Controller) Position() (int, int) {
	return c.index + 1, c.catalog.Len()
}

// Advance moves to the next item, wrapping from the last item to the first,
// and returns the new index. The cue is played after the index has changed.
func (c *Controller) Advance() int {
	from := c.index
	c.index = (c.index + 1) % c.catalog.Len()
	events.Gallery.Advance(from, c.index, c.catalog.At(c.index).ID)
	c.playCue()
	return c.index
}

// Select activates the item at idx. Requests outside the catalog are ignored
// and report false.
func (c *Controller) Select(idx int) bool {
	if idx < 0 || idx >= c.catalog.Len() {
		events.Gallery.SelectIgnored(idx, c.catalog.Len())
		return false
	}
	from := c.index
	c.index = idx
	events.Gallery.Select(from, idx, c.catalog.At(idx).ID)
	return true
}

// Previous moves to the prior item, wrapping from the first item to the last.
func (c *Controller) Previous() int {
	n := c.catalog.Len()
	c.Select((c.index - 1 + n) % n)
	return c.index
}

func (c *Controller) playCue() {
	defer func() {
		if r := recover(); r != nil {
			events.Cue.Dropped("panic")
		}
	}()
	c.cue.Play()
}
