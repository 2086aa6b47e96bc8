// Package grid implements the spatial core of Griddle: placing rectangular
// dashboard cards on a fixed-column, unbounded-row grid and keeping the
// arrangement consistent after every mutation.
//
// The package is built from small pure functions over an immutable Layout
// value:
//
//   - Overlaps is the single rectangle-intersection predicate every other
//     algorithm composes.
//   - FindSlot scans the grid row-major for the first free rectangle of a
//     given size (cold-start placement).
//   - Compact migrates cards upward while no collision occurs, until a
//     fixed point (gravity).
//   - PushDown resolves a drop by recursively displacing overlapped cards
//     downward (the push-down cascade).
//   - ResolveOverlaps is the global safety pass that separates any pair the
//     directed cascade did not fully cover.
//
// None of these mutate their input; each returns a new Layout. The host
// (see pkg/engine) owns the single mutable reference and publishes only
// final, fully resolved layouts.
//
// # Degenerate Inputs
//
// The package never fails an interaction: oversized cards are clamped to
// the column count, exhausted slot searches fall back to the origin, and
// the iteration caps on Compact and ResolveOverlaps return the best-effort
// layout while flagging the event through pkg/observability.
package grid
