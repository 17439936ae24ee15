package astar

import "github.com/katalvlaran/astargrid/gridgraph"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. On a 4-connected
// unit-cost grid it is admissible and consistent, which is what makes the
// first path reaching end a shortest one.
func Manhattan(a, b gridgraph.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
