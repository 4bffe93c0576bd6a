package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. Frame
// ticks are delivered synchronously from a fake clock, so an animation runs to
// completion inside a single Send.
type Harness struct {
	model  *Model
	clock  time.Time
	frames int
	quit   bool
}

// NewHarness creates a harness for the provided model and swaps its clock and
// frame scheduler for deterministic ones.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model, clock: time.Unix(0, 0)}
	if model != nil {
		model.now = h.now
		model.tick = h.tick
	}
	return h
}

func (h *Harness) now() time.Time {
	return h.clock
}

func (h *Harness) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		h.clock = h.clock.Add(d)
		h.frames++
		return fn(h.clock)
	}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendNoFrames routes msg through the model but drops any scheduled frame, so
// tests can observe a transition mid-flight.
func (h *Harness) SendNoFrames(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	mdl, _ := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 && !h.quit {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.QuitMsg:
			h.quit = true
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			mdl, follow := h.model.Update(msg)
			if updated, ok := mdl.(*Model); ok {
				h.model = updated
			}
			queue = append(queue, follow)
		}
	}
}

// Advance moves the fake clock without delivering a frame.
func (h *Harness) Advance(d time.Duration) {
	h.clock = h.clock.Add(d)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Frames reports how many animation frames have been delivered.
func (h *Harness) Frames() int {
	return h.frames
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}
