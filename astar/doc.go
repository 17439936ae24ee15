// Package astar provides an incremental A* shortest-path search over a
// square grid of cells with unit-cost 4-directional moves.
//
// Overview:
//
//   - Search expands cells in order of f = g + h, where g is the number of
//     moves from start and h is the Manhattan distance to end.
//   - Ties in f are broken by enqueue order: every frontier entry carries a
//     sequence number, so repeated runs on an unchanged board expand cells
//     in the same order and return the same path.
//   - Progress is visible: cells are tagged Open when queued, Closed when
//     expanded and Path when on the result, and an injected observer runs
//     after every expansion so a renderer can redraw.
//
// When to use:
//
//   - Path-finding visualisers and teaching tools.
//   - Any uniform grid where diagonal moves and terrain weights do not apply.
//
// Cancellation:
//
//   - Return ErrStop from the observer, or cancel the context passed with
//     WithContext. The search stops at once, reports Cancelled and leaves the
//     tags as they are. A deadline is just a context with a timeout.
//
// Error handling:
//
//   - ErrInvalidInvocation: nil grid, start == end, an endpoint out of
//     bounds or on a barrier. Nothing is enqueued.
//   - NotFound is an Outcome, not an error.
//
// Performance and complexity:
//
//   - Time:  O(E log V) over the explored cells.
//   - Space: O(V) for g/f tables, the predecessor map and the frontier.
//
// Thread safety:
//
//   - A search owns its tables exclusively and uses no package state, so
//     independent grids can be searched in parallel. Searching one grid
//     from two goroutines at once is not safe: tags are written in place.
package astar
