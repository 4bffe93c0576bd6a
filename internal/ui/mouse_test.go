package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestClickTileSelects(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	tile := h.Model().layout().tiles[2]
	h.Send(press(tile.X+2, tile.Y+1))
	if got := h.Model().Index(); got != 2 {
		t.Fatalf("expected tile click to select 2, got %d", got)
	}
	if h.Model().stage.Displayed() != "look-3" {
		t.Fatalf("expected look-3 on stage, got %q", h.Model().stage.Displayed())
	}
}

func TestClickAdvanceButtonCycles(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	b := h.Model().layout().button
	for i := 0; i < 4; i++ {
		h.Send(press(b.X+1, b.Y))
	}
	if got := h.Model().Index(); got != 0 {
		t.Fatalf("expected four advances to wrap to 0, got %d", got)
	}
}

func TestClickIgnoresOtherButtonsAndStage(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	l := h.Model().layout()
	tile := l.tiles[1]
	h.Send(tea.MouseMsg{X: tile.X + 1, Y: tile.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	h.Send(press(l.card.X+1, l.card.Y+1))
	if got := h.Model().Index(); got != 0 {
		t.Fatalf("expected index to stay 0, got %d", got)
	}
}

func TestHoverShowsLabel(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	tile := h.Model().layout().tiles[1]
	h.Send(tea.MouseMsg{X: tile.X + 1, Y: tile.Y + 1, Action: tea.MouseActionMotion})
	if view := plainView(h); !strings.Contains(view, "Select Minimal trench coat") {
		t.Fatalf("expected hover label in status line, view =\n%s", view)
	}

	b := h.Model().layout().button
	h.Send(tea.MouseMsg{X: b.X, Y: b.Y, Action: tea.MouseActionMotion})
	if view := plainView(h); !strings.Contains(view, "Next look (position 1 of 4)") {
		t.Fatalf("expected advance description on hover, view =\n%s", view)
	}

	h.Send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if h.Model().hover != (control{}) {
		t.Fatalf("expected hover cleared, got %+v", h.Model().hover)
	}
}

func TestHoverFollowsPositionAfterClick(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	b := h.Model().layout().button
	h.Send(press(b.X, b.Y))
	if got := h.Model().hover.label; got != "Next look (position 2 of 4)" {
		t.Fatalf("expected refreshed hover label, got %q", got)
	}
}

func TestCompactLayoutHasNoControls(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Width: 20, Height: 8}))
	if _, ok := h.Model().controlAt(1, 1); ok {
		t.Fatalf("expected no hit targets in compact layout")
	}
}
