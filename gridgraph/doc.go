// Package gridgraph treats a square grid of cells as an unweighted graph
// for shortest-path search and its visualisation.
//
// What:
//
//   - Grid owns a rows×rows arrangement of Cells, addressed by Coord.
//   - Each Cell carries a State tag: Free, Barrier, Start, End, Open, Closed, Path.
//   - RecomputeNeighbors stores each cell's 4-directional passable neighbours
//     in the fixed order down, up, right, left.
//   - Editor applies click-style placements while keeping one start and one end.
//   - Regions identifies passable areas separated by barriers.
//
// Why:
//
//   - Path-finding visualisers: a board the user edits, then searches.
//   - Maze and obstacle analysis: reachability before running a search.
//
// Complexity:
//
//   - New, RecomputeNeighbors, Regions, Scatter: O(rows²).
//   - Adjacent, Cell, Locate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: rows < 1.
//   - ErrBadWidth: window width smaller than rows.
//   - ErrOutOfBounds: coordinate or pixel outside the grid.
//   - ErrInvalidDensity: scatter density outside [0,1].
//   - ErrOccupied: placement onto the other endpoint.
package gridgraph
