// Package gridgraph defines the cell, coordinate and option types
// shared by the grid and the search engine built on top of it.
package gridgraph

import "fmt"

// DefaultRows is the side length used by the interactive driver.
const DefaultRows = 50

// DefaultWidth is the pixel width of the square visualisation window.
const DefaultWidth = 600

// Coord is the stable identity of a Cell. It is comparable and is used
// directly as a map key by the search tables.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State tags what a Cell currently is, from the user's placement or
// from search progress.
type State uint8

const (
	// Free is an empty, passable cell.
	Free State = iota
	// Barrier is impassable and never appears in a neighbour list.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
	// Open marks a cell that has been placed on the frontier.
	Open
	// Closed marks a cell that has been expanded.
	Closed
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{"free", "barrier", "start", "end", "open", "closed", "path"}

// stateRunes is the one-rune board notation used by Grid.String.
var stateRunes = [...]rune{'.', '#', 'S', 'E', 'o', 'x', '*'}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Rune returns the board notation for s.
func (s State) Rune() rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}
	return '?'
}

// Cell is a single grid position. Its neighbour list holds coordinates
// into the same Grid and is only valid until the next RecomputeNeighbors.
type Cell struct {
	row, col  int
	state     State
	neighbors []Coord
}

// Coord returns the cell's identity.
func (c *Cell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// State returns the current tag.
func (c *Cell) State() State { return c.state }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// Neighbors returns the list stored by the last RecomputeNeighbors call,
// in the order down, up, right, left.
func (c *Cell) Neighbors() []Coord { return c.neighbors }

// The mark methods only change the tag. Rendering the change is the
// caller's concern.

func (c *Cell) MarkStart() { c.state = Start }
func (c *Cell) MarkEnd() { c.state = End }
func (c *Cell) MarkBarrier() { c.state = Barrier }
func (c *Cell) MarkOpen() { c.state = Open }
func (c *Cell) MarkClosed() { c.state = Closed }
func (c *Cell) MarkPath() { c.state = Path }
func (c *Cell) Reset() { c.state = Free }

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Width is the pixel width of the square window the grid is drawn in.
	Width int
}

// Option configures New.
type Option func(*GridOptions)

// DefaultGridOptions returns GridOptions with Width=DefaultWidth.
func DefaultGridOptions() GridOptions {
	return GridOptions{Width: DefaultWidth}
}

// WithWidth sets the pixel width of the window. The cell pixel size is
// width / rows.
func WithWidth(px int) Option {
	return func(o *GridOptions) {
		o.Width = px
	}
}

// Grid is a rows×rows square of Cells stored row-major. The side length
// is fixed for the Grid's lifetime.
type Grid struct {
	rows  int
	gap   int
	cells []Cell
}
