package state

import "testing"

func TestEnsureVisibleScrollsForward(t *testing.T) {
	v := Viewport{}
	v.EnsureVisible(4, 5, 2)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", v.Offset)
	}
}

func TestEnsureVisibleScrollsBack(t *testing.T) {
	v := Viewport{Offset: 4}
	v.EnsureVisible(1, 8, 3)
	if v.Offset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", v.Offset)
	}
}

func TestEnsureVisibleResetsWhenEverythingFits(t *testing.T) {
	v := Viewport{Offset: 4}
	v.EnsureVisible(2, 5, 0)
	if v.Offset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", v.Offset)
	}
	v.Offset = 3
	v.EnsureVisible(2, 4, 10)
	if v.Offset != 0 {
		t.Fatalf("expected offset clamped to 0 when all entries fit, got %d", v.Offset)
	}
}

func TestEnsureVisibleNormalisesCursor(t *testing.T) {
	v := Viewport{Offset: 2}
	v.EnsureVisible(-1, 5, 2)
	if v.Offset != 0 {
		t.Fatalf("expected offset 0 for negative cursor, got %d", v.Offset)
	}
	v.EnsureVisible(99, 5, 2)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3 for cursor past end, got %d", v.Offset)
	}
}

func TestVisible(t *testing.T) {
	v := Viewport{Offset: 2}
	if !v.Visible(2, 3) || !v.Visible(4, 3) || v.Visible(5, 3) || v.Visible(1, 3) {
		t.Fatalf("unexpected visibility window")
	}
	if !v.Visible(100, 0) {
		t.Fatalf("expected everything visible without a limit")
	}
}
