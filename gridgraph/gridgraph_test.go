package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/gridgraph"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty grids and undersized windows.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows int
		opts []gridgraph.Option
		err  error
	}{
		{"ZeroRows", 0, nil, gridgraph.ErrEmptyGrid},
		{"NegativeRows", -3, nil, gridgraph.ErrEmptyGrid},
		{"NarrowWindow", 10, []gridgraph.Option{gridgraph.WithWidth(9)}, gridgraph.ErrBadWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.rows, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_CoversEveryCoordinate checks that cells are Free and carry unique
// coordinates covering the whole square.
func TestNew_CoversEveryCoordinate(t *testing.T) {
	g, err := gridgraph.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, gridgraph.DefaultWidth/4, g.Gap())

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := gridgraph.Coord{Row: r, Col: c}
			cell, err := g.Cell(want)
			require.NoError(t, err)
			assert.Equal(t, want, cell.Coord())
			assert.Equal(t, gridgraph.Free, cell.State())
		}
	}
	assert.Equal(t, 16, g.Count(gridgraph.Free))
}

// TestInBounds checks InBounds and Cell on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(3)
	require.NoError(t, err)

	for _, c := range []gridgraph.Coord{{0, 0}, {2, 2}, {1, 2}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridgraph.Coord{{-1, 0}, {3, 0}, {0, 3}, {2, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.Cell(c)
		assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	}
}

//----------------------------------------------------------------------------//
// Neighbour Tests
//----------------------------------------------------------------------------//

// TestAdjacent_Order verifies the down, up, right, left enumeration order.
func TestAdjacent_Order(t *testing.T) {
	g, err := gridgraph.New(3)
	require.NoError(t, err)

	got := g.Adjacent(gridgraph.Coord{Row: 1, Col: 1})
	want := []gridgraph.Coord{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	assert.Equal(t, want, got)

	corner := g.Adjacent(gridgraph.Coord{Row: 0, Col: 0})
	assert.Equal(t, []gridgraph.Coord{{1, 0}, {0, 1}}, corner)

	assert.Nil(t, g.Adjacent(gridgraph.Coord{Row: 5, Col: 5}))
}

// TestRecomputeNeighbors_SkipsBarriers ensures barriers never appear in a
// neighbour list and that the lists refresh after the layout changes.
func TestRecomputeNeighbors_SkipsBarriers(t *testing.T) {
	g, err := gridgraph.New(3)
	require.NoError(t, err)
	centre, _ := g.Cell(gridgraph.Coord{Row: 1, Col: 1})

	g.RecomputeNeighbors()
	assert.Len(t, centre.Neighbors(), 4)

	down, _ := g.Cell(gridgraph.Coord{Row: 2, Col: 1})
	down.MarkBarrier()
	// stored lists are stale until recomputed
	assert.Len(t, centre.Neighbors(), 4)

	g.RecomputeNeighbors()
	assert.Equal(t, []gridgraph.Coord{{0, 1}, {1, 2}, {1, 0}}, centre.Neighbors())

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell, _ := g.Cell(gridgraph.Coord{Row: r, Col: c})
			assert.NotContains(t, cell.Neighbors(), down.Coord())
		}
	}
}

// TestRecomputeNeighbors_Idempotent checks that two calls without barrier
// changes give identical lists.
func TestRecomputeNeighbors_Idempotent(t *testing.T) {
	g, err := gridgraph.New(6)
	require.NoError(t, err)
	for _, c := range []gridgraph.Coord{{1, 1}, {2, 3}, {4, 0}} {
		cell, _ := g.Cell(c)
		cell.MarkBarrier()
	}

	g.RecomputeNeighbors()
	first := make(map[gridgraph.Coord][]gridgraph.Coord)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell, _ := g.Cell(gridgraph.Coord{Row: r, Col: c})
			first[cell.Coord()] = append([]gridgraph.Coord(nil), cell.Neighbors()...)
		}
	}

	g.RecomputeNeighbors()
	for at, want := range first {
		cell, _ := g.Cell(at)
		assert.Equal(t, want, cell.Neighbors(), "neighbours of %v", at)
	}
}

//----------------------------------------------------------------------------//
// Reset, Locate and String Tests
//----------------------------------------------------------------------------//

func TestClearSearch_KeepsPlacement(t *testing.T) {
	g, err := gridgraph.New(2)
	require.NoError(t, err)
	mark := func(c gridgraph.Coord, fn func(*gridgraph.Cell)) {
		cell, err := g.Cell(c)
		require.NoError(t, err)
		fn(cell)
	}
	mark(gridgraph.Coord{Row: 0, Col: 0}, (*gridgraph.Cell).MarkStart)
	mark(gridgraph.Coord{Row: 0, Col: 1}, (*gridgraph.Cell).MarkOpen)
	mark(gridgraph.Coord{Row: 1, Col: 0}, (*gridgraph.Cell).MarkBarrier)
	mark(gridgraph.Coord{Row: 1, Col: 1}, (*gridgraph.Cell).MarkPath)

	g.ClearSearch()
	assert.Equal(t, "S.\n#.\n", g.String())

	g.Reset()
	assert.Equal(t, "..\n..\n", g.String())
}

func TestLocate(t *testing.T) {
	g, err := gridgraph.New(50, gridgraph.WithWidth(600))
	require.NoError(t, err)
	require.Equal(t, 12, g.Gap())

	c, err := g.Locate(25, 599)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Coord{Row: 2, Col: 49}, c)

	_, err = g.Locate(600, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = g.Locate(-1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "barrier", gridgraph.Barrier.String())
	assert.Equal(t, "State(42)", gridgraph.State(42).String())
	assert.Equal(t, '*', gridgraph.Path.Rune())
}
