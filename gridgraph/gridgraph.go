// Package gridgraph provides a square grid of cells treated as an
// unweighted 4-connected graph. It supports:
//
//   - Placement of start, end and barrier cells
//   - Neighbour recomputation against the current barrier layout
//   - Identification of passable regions
//   - Pixel to cell mapping for the visualisation layer
//
// Cells tagged Barrier are impassable; every other tag is passable.
package gridgraph

import (
	"fmt"
	"strings"
)

// offsets lists the neighbour directions in enumeration order:
// down, up, right, left. The search engine's tie-break sequence follows
// this order, so changing it changes the expansion order.
var offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// New allocates a rows×rows grid of Free cells.
// Returns ErrEmptyGrid if rows < 1 and ErrBadWidth if the configured
// width cannot give every cell at least one pixel.
// Complexity: O(rows²) time and memory.
func New(rows int, opts ...Option) (*Grid, error) {
	if rows < 1 {
		return nil, ErrEmptyGrid
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Width < rows {
		return nil, fmt.Errorf("%w: width=%d rows=%d", ErrBadWidth, o.Width, rows)
	}

	cells := make([]Cell, rows*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			cells[r*rows+c] = Cell{row: r, col: c}
		}
	}

	return &Grid{rows: rows, gap: o.Width / rows, cells: cells}, nil
}

// Rows returns the side length of the grid.
func (g *Grid) Rows() int { return g.rows }

// Gap returns the pixel size of one cell.
func (g *Grid) Gap() int { return g.gap }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.rows
}

// Cell returns the cell at c, or ErrOutOfBounds.
func (g *Grid) Cell(c Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.rows)
	}
	return &g.cells[g.index(c)], nil
}

// at returns the cell at an in-bounds coordinate.
func (g *Grid) at(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// Adjacent computes, on demand, every in-bounds non-barrier neighbour of c
// in the order down, up, right, left. Out-of-bounds c yields nil.
// Complexity: O(1).
func (g *Grid) Adjacent(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	adj := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && !g.at(n).IsBarrier() {
			adj = append(adj, n)
		}
	}
	return adj
}

// RecomputeNeighbors refreshes every cell's stored neighbour list against
// the current barrier layout. It must be called after barrier changes and
// before a search.
// Complexity: O(rows²).
func (g *Grid) RecomputeNeighbors() {
	for i := range g.cells {
		cell := &g.cells[i]
		cell.neighbors = g.Adjacent(cell.Coord())
	}
}

// Reset tags every cell Free.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Reset()
	}
}

// ClearSearch tags Open, Closed and Path cells Free again, leaving
// start, end and barrier placement intact.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		switch g.cells[i].state {
		case Open, Closed, Path:
			g.cells[i].Reset()
		}
	}
}

// Locate maps a pixel position inside the window to the cell under it.
// x selects the row and y the column, matching how cells are laid out
// on screen.
func (g *Grid) Locate(x, y int) (Coord, error) {
	if x < 0 || y < 0 {
		return Coord{}, fmt.Errorf("%w: pixel (%d,%d)", ErrOutOfBounds, x, y)
	}
	c := Coord{Row: x / g.gap, Col: y / g.gap}
	if !g.InBounds(c) {
		return Coord{}, fmt.Errorf("%w: pixel (%d,%d)", ErrOutOfBounds, x, y)
	}
	return c, nil
}

// Count returns how many cells currently carry state s.
func (g *Grid) Count(s State) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].state == s {
			n++
		}
	}
	return n
}

// String renders the board one rune per cell, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.rows + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			b.WriteRune(g.cells[r*g.rows+c].state.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps c to its row-major slot: row*rows + col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.rows + c.Col
}

// coordinate converts a row-major slot back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return Coord{Row: idx / g.rows, Col: idx % g.rows}
}
