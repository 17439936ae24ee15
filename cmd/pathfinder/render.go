package main

import (
	"bufio"
	"io"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// ANSI escape sequences for terminal output.
const (
	clearScreen = "\033[H\033[2J"
	colorReset  = "\033[0m"
)

// stateColors mirrors the visualiser palette: barriers black, start
// orange, end turquoise, open green, closed red, path purple.
var stateColors = map[gridgraph.State]string{
	gridgraph.Free:    "\033[37m",
	gridgraph.Barrier: "\033[30;47m",
	gridgraph.Start:   "\033[33m",
	gridgraph.End:     "\033[36m",
	gridgraph.Open:    "\033[32m",
	gridgraph.Closed:  "\033[31m",
	gridgraph.Path:    "\033[35m",
}

// renderer draws a grid to a terminal, one rune per cell.
type renderer struct {
	w      io.Writer
	grid   *gridgraph.Grid
	color  bool
	redraw bool
	frames int
}

func newRenderer(w io.Writer, g *gridgraph.Grid, color, redraw bool) *renderer {
	return &renderer{w: w, grid: g, color: color, redraw: redraw}
}

// Frame writes the whole board once.
func (r *renderer) Frame() error {
	bw := bufio.NewWriter(r.w)
	if r.redraw {
		bw.WriteString(clearScreen)
	}
	n := r.grid.Rows()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell, err := r.grid.Cell(gridgraph.Coord{Row: row, Col: col})
			if err != nil {
				return err
			}
			s := cell.State()
			if r.color {
				bw.WriteString(stateColors[s])
				bw.WriteRune(s.Rune())
				bw.WriteString(colorReset)
				continue
			}
			bw.WriteRune(s.Rune())
		}
		bw.WriteByte('\n')
	}
	r.frames++
	return bw.Flush()
}
