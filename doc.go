// Package astargrid is a small toolkit for shortest-path search on square
// grids, built for visualisers that redraw the board as the search runs.
//
// What is in here?
//
//	gridgraph/      — Grid, Cell, Coord and State; neighbour recomputation,
//	                  click-style placement, passable regions, random barriers
//	astar/          — incremental A* with deterministic tie-breaking, path
//	                  reconstruction and a per-step observer
//	cmd/pathfinder/ — terminal driver that builds a board and animates a search
//
// Quick ASCII example (S start, E end, # barrier, * path, x expanded):
//
//	S***
//	###*
//	xxx*
//	E***
//
// The core keeps no package-level state, so independent grids can be
// searched from parallel goroutines.
package astargrid
