package command

import (
	"testing"

	"github.com/atomicstack/lookbook/internal/catalog"
	"github.com/atomicstack/lookbook/internal/gallery"
	"github.com/atomicstack/lookbook/internal/render"
)

func TestDispatch(t *testing.T) {
	ctl := gallery.New(catalog.MustNew([]catalog.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
	bus := New(ctl)

	if !bus.Dispatch(render.AdvanceAction()) || ctl.Index() != 1 {
		t.Fatalf("expected advance to index 1, got %d", ctl.Index())
	}
	if !bus.Dispatch(render.SelectAction(2)) || ctl.Index() != 2 {
		t.Fatalf("expected select to index 2, got %d", ctl.Index())
	}
	if bus.Dispatch(render.SelectAction(7)) {
		t.Fatalf("expected out-of-range select to be skipped")
	}
	if bus.Dispatch(render.Action{}) {
		t.Fatalf("expected empty action to be skipped")
	}
	if ctl.Index() != 2 {
		t.Fatalf("expected index to stay 2, got %d", ctl.Index())
	}
}
