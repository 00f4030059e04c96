// Package oracle provides brute-force reference answers and grid fixtures
// for gridpath tests.
package oracle

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// HopDistance returns the shortest 4-connected hop count from s to t by plain
// BFS over open cells, or -1 if t is unreachable.
func HopDistance(g *gridgraph.Grid, s, t gridgraph.Coord) int {
	if !g.Walkable(s) || !g.Walkable(t) {
		return -1
	}
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(s)] = 0
	queue := []gridgraph.Coord{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			return dist[g.Index(u)]
		}
		for _, d := range gridgraph.Offsets4 {
			v := u.Add(d)
			if g.Walkable(v) && dist[g.Index(v)] < 0 {
				dist[g.Index(v)] = dist[g.Index(u)] + 1
				queue = append(queue, v)
			}
		}
	}

	return -1
}

// RandomGrid returns a rows×cols grid where each cell is a wall with
// probability density, keeping s and t open.
func RandomGrid(rng *rand.Rand, rows, cols int, density float64, s, t gridgraph.Coord) *gridgraph.Grid {
	g, err := gridgraph.New(rows, cols)
	if err != nil {
		panic(err)
	}
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		if c != s && c != t && rng.Float64() < density {
			_ = g.SetWall(c, true)
		}
	}

	return g
}

// ValidPath reports whether path runs from s to t over open cells with every
// consecutive pair 4-adjacent.
func ValidPath(g *gridgraph.Grid, path []gridgraph.Coord, s, t gridgraph.Coord) bool {
	if len(path) == 0 || path[0] != s || path[len(path)-1] != t {
		return false
	}
	for i, c := range path {
		if !g.Walkable(c) {
			return false
		}
		if i > 0 {
			d := c.Sub(path[i-1])
			if abs(d.Row)+abs(d.Col) != 1 {
				return false
			}
		}
	}

	return true
}

// Cases yields seeded random scenarios for property tests: grids of varying
// size and wall density with start and goal in opposite corners or random
// open cells.
func Cases(seed int64, n int) []Case {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		rows, cols := 3+rng.Intn(14), 3+rng.Intn(14)
		s := gridgraph.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		t := gridgraph.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if i%3 == 0 {
			s, t = gridgraph.Coord{}, gridgraph.Coord{Row: rows - 1, Col: cols - 1}
		}
		density := 0.1 + 0.3*rng.Float64()
		out = append(out, Case{Grid: RandomGrid(rng, rows, cols, density, s, t), Start: s, Goal: t})
	}

	return out
}

// Case is one generated search input.
type Case struct {
	Grid        *gridgraph.Grid
	Start, Goal gridgraph.Coord
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
