// Package ui contains the Bubble Tea program that presents the gallery.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, pointer input, the jump prompt and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, resizes, animation frames).
//   - Every selection change is expressed as a render.Action and applied by
//     the command bus (internal/ui/command), which is the only caller of the
//     gallery controller's mutators.
//   - After a change the model re-renders the frame, retargets the stage
//     crossfade and commits the new shared-element bounds to the morph
//     registry. While either is moving, one frameMsg tick is kept in flight.
//
// State ownership:
//   - The active index lives in gallery.Controller and nowhere else.
//   - Transition state lives in internal/transition; the model only reads the
//     current pose and ghost rectangles when drawing.
//   - Thumbnail scrolling is tracked by internal/ui/state.Viewport.
//
// Rendering:
//   - The stage, advance button, tiles and ghosts overlap, so they are painted
//     onto a cell canvas in that order. The header and bottom bar are plain
//     styled lines joined around the canvas body.
package ui
