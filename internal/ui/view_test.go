package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/lookbook/internal/catalog"
	"github.com/atomicstack/lookbook/internal/gallery"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsStageControlsAndTiles(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	view := plainView(h)
	for _, want := range []string{
		"Curated Looks",
		"Tap a tile to bring it center stage.",
		"Next look",
		"01 / 04",
		"Linen shirt in soft beige",
		"Minimal trench coat",
		"Pastel brown knit",
		"position 1 of 4",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewFitsTerminal(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {50, 20}, {120, 40}, {20, 8}} {
		h := NewHarness(newTestModel(t, Options{Width: size[0], Height: size[1]}))
		lines := strings.Split(h.View(), "\n")
		if len(lines) > size[1] {
			t.Fatalf("%dx%d: expected at most %d lines, got %d", size[0], size[1], size[1], len(lines))
		}
		for i, line := range lines {
			if w := ansi.StringWidth(line); w > size[0] {
				t.Fatalf("%dx%d: line %d is %d wide: %q", size[0], size[1], i, w, ansi.Strip(line))
			}
		}
	}
}

func TestViewFollowsCrossfade(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.SendNoFrames(runeKey('n'))

	view := plainView(h)
	if !strings.Contains(view, "02 / 04") {
		t.Fatalf("expected the position to update at once, view =\n%s", view)
	}
	if !strings.Contains(view, "Linen shirt in soft beige") {
		t.Fatalf("expected the outgoing look to stay on stage until its exit ends, view =\n%s", view)
	}

	h.Model().ticking = false
	h.Send(frameMsg(h.now()))
	view = plainView(h)
	if strings.Contains(view, "Linen shirt in soft beige") {
		t.Fatalf("expected the outgoing look gone from the stage, view =\n%s", view)
	}
	if !strings.Contains(view, "Minimal trench coat · position 2 of 4") {
		t.Fatalf("expected footer for look-2, view =\n%s", view)
	}
}

func TestCompactViewListsLooks(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Width: 28, Height: 30}))
	view := plainView(h)
	if !strings.Contains(view, "▸ 1") {
		t.Fatalf("expected active marker on first look, view =\n%s", view)
	}
	h.Send(runeKey('n'))
	view = plainView(h)
	if !strings.Contains(view, "▸ 2") || strings.Contains(view, "▸ 1") {
		t.Fatalf("expected active marker on second look, view =\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "he…"},
		{"hello", 1, "h"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
		{"日本語", 6, "日本語"},
	}
	for _, tc := range cases {
		got := truncateText(tc.in, tc.width)
		if got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
		if w := ansi.StringWidth(got); w > tc.width {
			t.Fatalf("truncateText(%q, %d) is %d cells wide", tc.in, tc.width, w)
		}
	}
}

func TestLimitHeight(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected trimmed lines with ellipsis, got %+v", got)
	}
	if got := limitHeight(lines, 5, 10); len(got) != 3 {
		t.Fatalf("expected lines untouched, got %+v", got)
	}
}

func TestViewLabelsBlankAltWithID(t *testing.T) {
	c := catalog.MustNew([]catalog.Item{
		{ID: "first", Alt: "First look"},
		{ID: "untitled-look", Alt: " "},
	})
	h := NewHarness(NewModel(gallery.New(c), Options{Width: 80, Height: 24, Instant: true}))
	h.Send(runeKey('2'))
	view := plainView(h)
	if !strings.Contains(view, "untitled-look · position 2 of 2") {
		t.Fatalf("expected footer to fall back to the id, view =\n%s", view)
	}
	stage := h.Model().layout().card
	lines := strings.Split(view, "\n")
	altRow := lines[stage.Y+stage.H-3]
	if !strings.Contains(altRow, "untitled-look") {
		t.Fatalf("expected the stage to draw the id for a blank alt, row = %q", altRow)
	}
}

func TestViewFitsWideTitle(t *testing.T) {
	title := strings.Repeat("見本", 30)
	for _, size := range [][2]int{{80, 24}, {24, 10}} {
		h := NewHarness(newTestModel(t, Options{Title: title, Width: size[0], Height: size[1]}))
		for i, line := range strings.Split(h.View(), "\n") {
			if w := ansi.StringWidth(line); w > size[0] {
				t.Fatalf("%dx%d: line %d is %d wide: %q", size[0], size[1], i, w, ansi.Strip(line))
			}
		}
	}
}
