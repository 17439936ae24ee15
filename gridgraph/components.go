package gridgraph

// Regions finds all 4-connected regions of passable (non-barrier) cells.
// Regions are returned in row-major order of their first cell, and each
// region lists its cells in BFS discovery order from that cell, using the
// same neighbour order as Adjacent.
//
// Regions reads barrier state directly and does not need
// RecomputeNeighbors to have been called.
//
// Time:   O(rows²).
// Memory: O(rows²) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.cells))
	var regions [][]Coord

	for i0 := range g.cells {
		if seen[i0] || g.cells[i0].IsBarrier() {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.coordinate(queue[qi])
			region = append(region, u)
			for _, v := range g.Adjacent(u) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are both passable and lie in the same
// region.
// Time: O(rows²) worst case.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) || g.at(a).IsBarrier() || g.at(b).IsBarrier() {
		return false
	}
	if a == b {
		return true
	}
	seen := map[Coord]bool{a: true}
	queue := []Coord{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Adjacent(queue[qi]) {
			if v == b {
				return true
			}
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}
