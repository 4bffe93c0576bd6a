package ui

import (
	"fmt"

	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/atomicstack/lookbook/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// control is something on screen that can be pointed at.
type control struct {
	name   string
	label  string
	action render.Action
}

// controlAt hit-tests the cell (x, y). The advance button is drawn above the
// stage card, so it is tested first.
func (m *Model) controlAt(x, y int) (control, bool) {
	l := m.layout()
	if l.compact {
		return control{}, false
	}
	if l.button.Contains(x, y) {
		adv := m.frame.Advance
		return control{
			name:   "advance",
			label:  fmt.Sprintf("%s (%s)", adv.Label, adv.Description),
			action: adv.Action,
		}, true
	}
	for _, th := range m.frame.Thumbs {
		if l.tiles[th.Index].Contains(x, y) {
			return control{name: "thumb:" + th.Key, label: th.Label, action: th.Action}, true
		}
	}
	if l.card.Contains(x, y) {
		return control{name: "stage", label: m.frame.Stage.Label}, true
	}
	return control{}, false
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	target, hit := m.controlAt(ev.X, ev.Y)
	switch ev.Action {
	case tea.MouseActionMotion:
		m.hover = control{}
		if hit {
			m.hover = target
		}
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || !hit {
			return nil
		}
		events.UI.Click(ev.X, ev.Y, target.name)
		if target.action.Kind == render.ActionNone {
			return nil
		}
		m.dispatch(target.action)
		// Labels derived from the selection (the advance position) changed.
		if again, ok := m.controlAt(ev.X, ev.Y); ok {
			m.hover = again
		}
	}
	return nil
}
