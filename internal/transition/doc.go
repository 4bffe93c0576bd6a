// Package transition animates the delta between two renders.
//
// Two independent mechanisms cooperate:
//
//   - Stage sequences the crossfade of the large stage element. The outgoing
//     element fades out while lifting and shrinking slightly; only after its
//     exit completes does the incoming element fade in while settling down to
//     full size. Times are passed in explicitly so the animator can be driven
//     by UI ticks and by tests alike.
//   - Registry is the shared-element layer. Every render commits the bounds of
//     each keyed element; when an element's bounds change between commits the
//     registry interpolates its rectangle from the old bounds to the new ones
//     with a spring, so a thumbnail appears to grow into the stage.
//
// Neither mechanism queues work. A new target always supersedes whatever is in
// flight.
package transition
