package gridgraph

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Scatter turns Free cells into barriers, each independently with
// probability density, drawing from src in row-major cell order.
// Start, End and any coordinate listed in keep are never touched, and
// neither are cells already carrying a non-Free tag.
// Returns the number of barriers placed.
//
// Determinism: a fixed seed and unchanged board give the same layout.
// Neighbour lists are not refreshed; call RecomputeNeighbors afterwards.
func (g *Grid) Scatter(density float64, src rand.Source, keep ...Coord) (int, error) {
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: got %.4f", ErrInvalidDensity, density)
	}
	if density == 0 {
		return 0, nil
	}
	if src == nil {
		src = rand.NewSource(1)
	}
	rng := rand.New(src)

	skip := make(map[Coord]struct{}, len(keep))
	for _, c := range keep {
		skip[c] = struct{}{}
	}

	placed := 0
	for i := range g.cells {
		cell := &g.cells[i]
		// draw for every cell so the layout does not shift when keep changes
		hit := rng.Float64() < density
		if !hit || cell.state != Free {
			continue
		}
		if _, ok := skip[cell.Coord()]; ok {
			continue
		}
		cell.MarkBarrier()
		placed++
	}
	return placed, nil
}
