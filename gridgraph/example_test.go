// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/astargrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Editor
////////////////////////////////////////////////////////////////////////////////

// ExampleEditor demonstrates click-style placement on a 4×4 board.
// Scenario:
//
//   - First click sets the start, second sets the end.
//   - Later clicks drop barriers; erasing the end frees it for re-placement.
func ExampleEditor() {
	g, _ := gridgraph.New(4)
	e := gridgraph.NewEditor(g)

	for _, c := range []gridgraph.Coord{{0, 0}, {3, 3}, {1, 1}, {1, 2}, {2, 1}} {
		_ = e.Place(c)
	}
	_ = e.Erase(gridgraph.Coord{Row: 3, Col: 3})
	_ = e.Place(gridgraph.Coord{Row: 3, Col: 0})

	fmt.Print(g)
	fmt.Println("ready:", e.Ready())
	// Output:
	// S...
	// .##.
	// .#..
	// E...
	// ready: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Regions shows how a wall splits the passable area.
func ExampleGrid_Regions() {
	g, _ := gridgraph.New(3)
	for r := 0; r < 3; r++ {
		cell, _ := g.Cell(gridgraph.Coord{Row: r, Col: 1})
		cell.MarkBarrier()
	}

	for i, region := range g.Regions() {
		fmt.Println("region", i, region)
	}
	// Output:
	// region 0 [(0,0) (1,0) (2,0)]
	// region 1 [(0,2) (1,2) (2,2)]
}
