package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(h *Harness, text string) {
	for _, r := range text {
		h.Send(runeKey(r))
	}
}

func TestJumpPromptSelectsFuzzyMatch(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('/'))
	if !h.Model().prompting {
		t.Fatalf("expected prompt to open")
	}
	typeText(h, "trench")
	if view := plainView(h); !strings.Contains(view, "→ Select Minimal trench coat") {
		t.Fatalf("expected match preview, view =\n%s", view)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	m := h.Model()
	if m.prompting {
		t.Fatalf("expected prompt to close")
	}
	if m.Index() != 1 {
		t.Fatalf("expected jump to index 1, got %d", m.Index())
	}
}

func TestJumpPromptByPosition(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('/'))
	typeText(h, "4")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.Model().Index(); got != 3 {
		t.Fatalf("expected index 3, got %d", got)
	}
}

func TestJumpPromptNoMatch(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('/'))
	typeText(h, "zzz")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.Model().Index(); got != 0 {
		t.Fatalf("expected index to stay 0, got %d", got)
	}
	if view := plainView(h); !strings.Contains(view, `No look matches "zzz"`) {
		t.Fatalf("expected no-match info, view =\n%s", view)
	}
}

func TestJumpPromptEscapeCancels(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Send(runeKey('/'))
	typeText(h, "qn")
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	m := h.Model()
	if m.prompting || h.Quit() {
		t.Fatalf("expected esc to close the prompt without quitting")
	}
	if m.Index() != 0 {
		t.Fatalf("expected keys typed into the prompt not to navigate, got %d", m.Index())
	}
	if m.prompt.Value() != "" {
		t.Fatalf("expected prompt value cleared, got %q", m.prompt.Value())
	}
}

func TestMatchesRanksClosestFirst(t *testing.T) {
	m := newTestModel(t, Options{})
	if got := m.bestMatch("knit"); got != 3 {
		t.Fatalf("expected knit to match index 3 first, got %d (all: %v)", got, m.matches("knit"))
	}
	if got := m.bestMatch("look-3"); got != 2 {
		t.Fatalf("expected id match, got %d", got)
	}
	if got := m.bestMatch("0"); got != -1 {
		t.Fatalf("expected position 0 to miss, got %d", got)
	}
	if got := m.bestMatch("   "); got != -1 {
		t.Fatalf("expected blank query to miss, got %d", got)
	}
}
