package gridgraph

import "fmt"

// Editor applies user placements to a Grid while keeping at most one
// start and one end on the board. It mirrors the click semantics of the
// interactive visualiser: the first placement sets the start, the second
// the end, and later ones drop barriers.
type Editor struct {
	grid       *Grid
	start, end *Coord
}

// NewEditor wraps g. Existing Start and End tags on g are adopted; if
// several cells carry the same endpoint tag, the first in row-major order
// wins and the others are reset.
func NewEditor(g *Grid) *Editor {
	e := &Editor{grid: g}
	for i := range g.cells {
		cell := &g.cells[i]
		c := cell.Coord()
		switch cell.state {
		case Start:
			if e.start != nil {
				cell.Reset()
				continue
			}
			e.start = &c
		case End:
			if e.end != nil {
				cell.Reset()
				continue
			}
			e.end = &c
		}
	}
	return e
}

// Grid returns the wrapped grid.
func (e *Editor) Grid() *Grid { return e.grid }

// Start returns the start coordinate, if placed.
func (e *Editor) Start() (Coord, bool) {
	if e.start == nil {
		return Coord{}, false
	}
	return *e.start, true
}

// End returns the end coordinate, if placed.
func (e *Editor) End() (Coord, bool) {
	if e.end == nil {
		return Coord{}, false
	}
	return *e.end, true
}

// Ready reports whether both endpoints are placed.
func (e *Editor) Ready() bool { return e.start != nil && e.end != nil }

// Place applies one primary click at c.
func (e *Editor) Place(c Coord) error {
	if _, err := e.grid.Cell(c); err != nil {
		return err
	}
	switch {
	case e.start == nil && !e.isEnd(c):
		return e.SetStart(c)
	case e.end == nil && !e.isStart(c):
		return e.SetEnd(c)
	case !e.isStart(c) && !e.isEnd(c):
		return e.SetBarrier(c)
	}
	return nil
}

// Erase resets the cell at c and forgets it as an endpoint.
func (e *Editor) Erase(c Coord) error {
	cell, err := e.grid.Cell(c)
	if err != nil {
		return err
	}
	cell.Reset()
	if e.isStart(c) {
		e.start = nil
	}
	if e.isEnd(c) {
		e.end = nil
	}
	return nil
}

// SetStart moves the start to c. The previous start, if any, is reset.
func (e *Editor) SetStart(c Coord) error {
	cell, err := e.grid.Cell(c)
	if err != nil {
		return err
	}
	if e.isEnd(c) {
		return fmt.Errorf("%w: %v is the end", ErrOccupied, c)
	}
	if e.start != nil {
		e.grid.at(*e.start).Reset()
	}
	cell.MarkStart()
	e.start = &c
	return nil
}

// SetEnd moves the end to c. The previous end, if any, is reset.
func (e *Editor) SetEnd(c Coord) error {
	cell, err := e.grid.Cell(c)
	if err != nil {
		return err
	}
	if e.isStart(c) {
		return fmt.Errorf("%w: %v is the start", ErrOccupied, c)
	}
	if e.end != nil {
		e.grid.at(*e.end).Reset()
	}
	cell.MarkEnd()
	e.end = &c
	return nil
}

// SetBarrier makes c impassable. Endpoints cannot become barriers.
func (e *Editor) SetBarrier(c Coord) error {
	cell, err := e.grid.Cell(c)
	if err != nil {
		return err
	}
	if e.isStart(c) || e.isEnd(c) {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	cell.MarkBarrier()
	return nil
}

// Clear resets the whole board and forgets both endpoints.
func (e *Editor) Clear() {
	e.grid.Reset()
	e.start, e.end = nil, nil
}

func (e *Editor) isStart(c Coord) bool { return e.start != nil && *e.start == c }
func (e *Editor) isEnd(c Coord) bool { return e.end != nil && *e.end == c }
