package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/lookbook/internal/catalog"
	"github.com/atomicstack/lookbook/internal/gallery"
	"github.com/atomicstack/lookbook/internal/transition"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 24
	}
	return NewModel(gallery.New(catalog.Default()), opts)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestNewModelStartsOnFirstLook(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.Index() != 0 {
		t.Fatalf("expected index 0, got %d", m.Index())
	}
	if got := m.Frame().Stage.Key; got != "look-1" {
		t.Fatalf("expected look-1 on stage, got %q", got)
	}
	if m.Animating() {
		t.Fatalf("expected a fresh model to be at rest")
	}
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected Init to return nil")
	}
}

func TestAdvanceKeyStartsCrossfade(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.SendNoFrames(runeKey('n'))

	m := h.Model()
	if m.Index() != 1 {
		t.Fatalf("expected index 1 after advance, got %d", m.Index())
	}
	if m.stage.Target() != "look-2" || m.stage.Displayed() != "look-1" {
		t.Fatalf("expected look-1 exiting towards look-2, got displayed=%q target=%q", m.stage.Displayed(), m.stage.Target())
	}
	if m.stage.Phase() != transition.PhaseExit {
		t.Fatalf("expected exit phase, got %s", m.stage.Phase())
	}
	if !m.Animating() {
		t.Fatalf("expected model to be animating")
	}
}

func TestAnimationRunsToCompletion(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('n'))

	m := h.Model()
	if m.Animating() {
		t.Fatalf("expected animation to settle")
	}
	if m.stage.Displayed() != "look-2" {
		t.Fatalf("expected look-2 displayed, got %q", m.stage.Displayed())
	}
	if m.stage.Pose() != transition.Rest {
		t.Fatalf("expected rest pose, got %+v", m.stage.Pose())
	}
	if h.Frames() == 0 {
		t.Fatalf("expected frames to be delivered")
	}
	if ghosts := m.registry.Ghosts(); len(ghosts) != 0 {
		t.Fatalf("expected no ghosts after settling, got %+v", ghosts)
	}
	if b, ok := m.registry.Bounds("look-2"); !ok || b != m.layout().card {
		t.Fatalf("expected look-2 bound to the card, got %+v", b)
	}
	if m.ticking {
		t.Fatalf("expected no frame outstanding once settled")
	}
}

func TestRapidAdvanceKeepsNewestTarget(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	for i := 0; i < 3; i++ {
		h.SendNoFrames(runeKey('n'))
	}
	m := h.Model()
	if m.Index() != 3 || m.stage.Target() != "look-4" {
		t.Fatalf("expected index 3 heading to look-4, got %d / %q", m.Index(), m.stage.Target())
	}
	m.ticking = false
	h.Send(frameMsg(h.now()))
	if m.stage.Displayed() != "look-4" || m.Animating() {
		t.Fatalf("expected look-4 settled on stage, got %q animating=%v", m.stage.Displayed(), m.Animating())
	}
}

func TestInstantModeNeverAnimates(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Instant: true}))
	h.Send(runeKey('n'))
	m := h.Model()
	if h.Frames() != 0 {
		t.Fatalf("expected no frames in instant mode, got %d", h.Frames())
	}
	if m.stage.Displayed() != "look-2" || m.Animating() {
		t.Fatalf("expected look-2 shown immediately")
	}
}

func TestPreviousKeyWraps(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('p'))
	if got := h.Model().Index(); got != 3 {
		t.Fatalf("expected previous from first to wrap to 3, got %d", got)
	}
}

func TestDigitSelects(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('3'))
	if got := h.Model().Index(); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	h.Send(runeKey('9'))
	if got := h.Model().Index(); got != 2 {
		t.Fatalf("expected out-of-range digit to be ignored, got %d", got)
	}
	if view := plainView(h); !strings.Contains(view, "No look at position 9") {
		t.Fatalf("expected info about missing position, view =\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('q'))
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}

func TestHelpToggle(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('?'))
	if !h.Model().help.ShowAll {
		t.Fatalf("expected full help")
	}
	if view := plainView(h); !strings.Contains(view, "previous") {
		t.Fatalf("expected full help to list previous, view =\n%s", view)
	}
	h.Send(runeKey('?'))
	if h.Model().help.ShowAll {
		t.Fatalf("expected help to toggle off")
	}
}

func TestWindowResizeDropsMorphs(t *testing.T) {
	m := newTestModel(t, Options{Width: -1, Height: -1})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	h.SendNoFrames(runeKey('2'))
	m.ticking = false
	// Finish the exit phase so the morph starts.
	h.Advance(transition.DefaultPhaseDuration)
	h.SendNoFrames(frameMsg(h.now()))
	if !m.registry.Animating() {
		t.Fatalf("expected a morph after the stage swapped")
	}
	h.SendNoFrames(tea.WindowSizeMsg{Width: 90, Height: 28})
	if m.registry.Animating() {
		t.Fatalf("expected resize to drop running morphs")
	}
	if m.width != 90 || m.height != 28 {
		t.Fatalf("expected new size, got %dx%d", m.width, m.height)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Width: 70, Height: 20}))
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m := h.Model(); m.width != 70 || m.height != 20 {
		t.Fatalf("expected fixed size to win, got %dx%d", m.width, m.height)
	}
}

func TestSelectMorphsTileIntoCard(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Width: 100, Height: 30}))
	m := h.Model()
	l := m.layout()

	h.SendNoFrames(runeKey('2'))
	if ghosts := m.registry.Ghosts(); len(ghosts) != 0 {
		t.Fatalf("expected no morph while the outgoing card exits, got %+v", ghosts)
	}
	m.ticking = false
	h.Advance(transition.DefaultPhaseDuration)
	h.SendNoFrames(frameMsg(h.now()))

	ghosts := m.registry.Ghosts()
	got := make([]transition.Ghost, len(ghosts))
	for i, g := range ghosts {
		got[i] = transition.Ghost{Key: g.Key, From: g.From, To: g.To}
	}
	want := []transition.Ghost{
		{Key: "look-1", From: l.card, To: l.tiles[0]},
		{Key: "look-2", From: l.tiles[1], To: l.card},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("morphs mismatch (-want +got):\n%s", diff)
	}
	for _, g := range ghosts {
		if g.Rect == g.To {
			t.Fatalf("expected %s to be in flight after one frame, got %+v", g.Key, g.Rect)
		}
	}
}
