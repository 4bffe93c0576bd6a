package transition

import (
	"math"
	"sort"

	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/charmbracelet/harmonica"
)

// Frames per second used by the morph spring and the UI tick.
const FPS = 60

const (
	springFrequency = 9.0
	springDamping   = 0.85
	settleDistance  = 0.25
	settleVelocity  = 0.5
)

// Rect is a cell-aligned bounding box.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Ghost is a shared element caught between two layouts.
type Ghost struct {
	Key  string
	Rect Rect
	From Rect
	To   Rect
}

type axis struct {
	pos, vel, target float64
}

func (a *axis) step(s harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.target)
}

func (a axis) settled() bool {
	return math.Abs(a.pos-a.target) < settleDistance && math.Abs(a.vel) < settleVelocity
}

type morph struct {
	from       Rect
	to         Rect
	x, y, w, h axis
}

func newMorph(first Rect, last Rect) *morph {
	return &morph{
		from: first,
		to:   last,
		x:    axis{pos: float64(first.X), target: float64(last.X)},
		y:    axis{pos: float64(first.Y), target: float64(last.Y)},
		w:    axis{pos: float64(first.W), target: float64(last.W)},
		h:    axis{pos: float64(first.H), target: float64(last.H)},
	}
}

func (m *morph) current() Rect {
	r := Rect{
		X: int(math.Round(m.x.pos)),
		Y: int(math.Round(m.y.pos)),
		W: int(math.Round(m.w.pos)),
		H: int(math.Round(m.h.pos)),
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// retarget keeps position and velocity and heads for a new destination.
func (m *morph) retarget(last Rect) {
	m.from = m.current()
	m.to = last
	m.x.target = float64(last.X)
	m.y.target = float64(last.Y)
	m.w.target = float64(last.W)
	m.h.target = float64(last.H)
}

func (m *morph) step(s harmonica.Spring) bool {
	m.x.step(s)
	m.y.step(s)
	m.w.step(s)
	m.h.step(s)
	return m.x.settled() && m.y.settled() && m.w.settled() && m.h.settled()
}

// Registry remembers the last known bounds of every keyed element and morphs
// an element from its previous bounds to its new ones whenever a layout
// moves it (First, Last, Invert, Play). Elements in different regions that
// share a key are the same element as far as the registry is concerned.
type Registry struct {
	spring  harmonica.Spring
	instant bool
	bounds  map[string]Rect
	morphs  map[string]*morph
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithInstantMorphs records bounds without ever animating.
func WithInstantMorphs(instant bool) RegistryOption {
	return func(r *Registry) {
		r.instant = instant
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), springFrequency, springDamping),
		bounds: make(map[string]Rect),
		morphs: make(map[string]*morph),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bounds returns the last committed bounds for key.
func (r *Registry) Bounds(key string) (Rect, bool) {
	b, ok := r.bounds[key]
	return b, ok
}

// Commit records a new layout. Keys whose bounds changed start (or redirect)
// a morph; keys missing from layout are forgotten.
func (r *Registry) Commit(layout map[string]Rect) {
	for key := range r.bounds {
		if _, ok := layout[key]; !ok {
			delete(r.bounds, key)
			delete(r.morphs, key)
		}
	}
	for key, last := range layout {
		first, known := r.bounds[key]
		r.bounds[key] = last
		if !known || first == last || r.instant {
			continue
		}
		if m, ok := r.morphs[key]; ok {
			m.retarget(last)
			events.Transition.Morph(key, rectArray(m.from), rectArray(last))
			continue
		}
		r.morphs[key] = newMorph(first, last)
		events.Transition.Morph(key, rectArray(first), rectArray(last))
	}
}

// Reset records layout as-is and drops every running morph. Used when the
// whole screen is re-laid out, for example after a resize.
func (r *Registry) Reset(layout map[string]Rect) {
	r.bounds = make(map[string]Rect, len(layout))
	for key, rect := range layout {
		r.bounds[key] = rect
	}
	r.morphs = make(map[string]*morph)
}

// Step advances every morph by one frame and reports whether any is still
// running.
func (r *Registry) Step() bool {
	for key, m := range r.morphs {
		if m.step(r.spring) {
			delete(r.morphs, key)
		}
	}
	return len(r.morphs) > 0
}

// Animating reports whether any morph is running.
func (r *Registry) Animating() bool {
	return len(r.morphs) > 0
}

// Ghosts returns the in-flight morphs ordered by key.
func (r *Registry) Ghosts() []Ghost {
	if len(r.morphs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r.morphs))
	for key := range r.morphs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]Ghost, 0, len(keys))
	for _, key := range keys {
		m := r.morphs[key]
		out = append(out, Ghost{Key: key, Rect: m.current(), From: m.from, To: m.to})
	}
	return out
}

func rectArray(r Rect) [4]int {
	return [4]int{r.X, r.Y, r.W, r.H}
}
