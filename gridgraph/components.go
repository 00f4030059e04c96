package gridgraph

// ConnectedComponents finds all contiguous regions of open (non-wall) cells
// under 4-connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order, and components appear in row-major
// order of their first cell.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			i0 := g.index(r, c)
			if g.walls[i0] || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				uc := g.Coordinate(u)
				for _, d := range Offsets4 {
					v := uc.Add(d)
					if !g.Walkable(v) {
						continue
					}
					vi := g.index(v.Row, v.Col)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Connected reports whether a and b are open cells of the same region.
// Complexity: O(R·C) worst case.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	seen := make([]bool, g.Len())
	queue := []Coord{a}
	seen[g.Index(a)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, d := range Offsets4 {
			v := u.Add(d)
			if g.Walkable(v) && !seen[g.Index(v)] {
				seen[g.Index(v)] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
