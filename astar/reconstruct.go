package astar

import (
	"fmt"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Reconstruct walks cameFrom backward from end until it reaches a cell
// with no predecessor, which is the start. Every cell strictly between
// end and start is tagged Path, and onStep runs after each tag.
//
// The returned slice runs from end back to, but not including, start.
// Reverse it (and prepend start) for forward order.
//
// It is only meaningful once end is known to be reachable. The only
// errors are an observer error, which stops the walk, and a predecessor
// outside g.
func Reconstruct(
	g *gridgraph.Grid,
	cameFrom map[gridgraph.Coord]gridgraph.Coord,
	end gridgraph.Coord,
	onStep StepFunc,
) ([]gridgraph.Coord, error) {
	if onStep == nil {
		onStep = func() error { return nil }
	}

	var trail []gridgraph.Coord
	for cur := end; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			return trail, nil
		}
		trail = append(trail, cur)
		if cur != end {
			cell, err := g.Cell(cur)
			if err != nil {
				return trail, fmt.Errorf("astar: reconstruct: %w", err)
			}
			cell.MarkPath()
			if err := onStep(); err != nil {
				return trail, err
			}
		}
		cur = prev
	}
}
