package command

import (
	"github.com/atomicstack/lookbook/internal/gallery"
	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/atomicstack/lookbook/internal/render"
)

// Bus applies control intents to the gallery controller. Dispatch is
// synchronous: when it returns, the controller already reflects the action.
type Bus struct {
	ctl *gallery.Controller
}

// New initialises a command bus for ctl.
func New(ctl *gallery.Controller) *Bus {
	return &Bus{ctl: ctl}
}

// Dispatch runs action and reports whether it was applied. Out-of-range
// selections and empty actions are skipped.
func (b *Bus) Dispatch(action render.Action) bool {
	name := action.String()
	events.Command.Queue(name)
	switch action.Kind {
	case render.ActionAdvance:
		idx := b.ctl.Advance()
		events.Command.Result(name, idx)
		return true
	case render.ActionSelect:
		if !b.ctl.Select(action.Index) {
			events.Command.Skip(name)
			return false
		}
		events.Command.Result(name, b.ctl.Index())
		return true
	default:
		events.Command.Skip(name)
		return false
	}
}
