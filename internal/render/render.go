// Package render turns the catalog and the active index into a description of
// what must be on screen. Render is a pure function: the same catalog and
// index always produce the same Frame, and nothing here holds state.
//
// Every visual element carries a continuity key (the item ID). The stage and
// the thumbnail of the same item share a key, which is what the transition
// layer uses to morph one into the other.
package render

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lookbook/internal/catalog"
)

// ActionKind identifies what a control does when activated.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAdvance
	ActionSelect
)

// Action is the intent a control hands back to the state controller.
type Action struct {
	Kind  ActionKind
	Index int
}

// AdvanceAction is the intent of the "next" control.
func AdvanceAction() Action {
	return Action{Kind: ActionAdvance}
}

// SelectAction is the intent of the thumbnail at idx.
func SelectAction(idx int) Action {
	return Action{Kind: ActionSelect, Index: idx}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionAdvance:
		return "advance"
	case ActionSelect:
		return fmt.Sprintf("select(%d)", a.Index)
	default:
		return "none"
	}
}

// Stage is the large view of the active item.
type Stage struct {
	Key   string
	Index int
	Item  catalog.Item
	Label string
}

// Thumb is one selectable preview in the side panel.
type Thumb struct {
	Index  int
	Key    string
	Item   catalog.Item
	Active bool
	Label  string
	Action Action
}

// AdvanceControl is the cyclic "next" button.
type AdvanceControl struct {
	Label       string
	Position    string
	Description string
	Action      Action
}

// Frame is everything the presentation layer draws for one index.
type Frame struct {
	Stage   Stage
	Thumbs  []Thumb
	Advance AdvanceControl
	Tone    string
}

const advanceLabel = "Next look"

// Render builds the frame for index. index must satisfy
// 0 <= index < c.Len(); the gallery controller guarantees it.
func Render(c *catalog.Catalog, index int) Frame {
	active := c.At(index)
	n := c.Len()
	thumbs := make([]Thumb, n)
	for i := 0; i < n; i++ {
		item := c.At(i)
		thumbs[i] = Thumb{
			Index:  i,
			Key:    item.ID,
			Item:   item,
			Active: i == index,
			Label:  "Select " + Describe(item),
			Action: SelectAction(i),
		}
	}
	return Frame{
		Stage: Stage{
			Key:   active.ID,
			Index: index,
			Item:  active,
			Label: Describe(active),
		},
		Thumbs: thumbs,
		Advance: AdvanceControl{
			Label:       advanceLabel,
			Position:    fmt.Sprintf("%02d / %02d", index+1, n),
			Description: fmt.Sprintf("position %d of %d", index+1, n),
			Action:      AdvanceAction(),
		},
		Tone: active.Tone,
	}
}

// ActiveThumb returns the thumbnail flagged active.
func (f Frame) ActiveThumb() (Thumb, bool) {
	for _, t := range f.Thumbs {
		if t.Active {
			return t, true
		}
	}
	return Thumb{}, false
}

// Describe is the accessible text of item: its alt text, or its ID when the
// alt text is blank. Every label in a Frame is derived from it.
func Describe(item catalog.Item) string {
	if alt := strings.TrimSpace(item.Alt); alt != "" {
		return alt
	}
	return item.ID
}
