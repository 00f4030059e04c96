package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ErrTooSmall indicates a requested size below 3×3.
var ErrTooSmall = errors.New("maze: rows and cols must be at least 3")

// Config controls Generate.
type Config struct {
	// Rows and Cols are rounded down to odd values; rooms sit on odd
	// coordinates and the outer ring stays wall.
	Rows, Cols int

	// Braiding: 0.0 (perfect maze, one route between any two cells) to
	// 1.0 (every dead end considered for a loop).
	Braiding float64

	Seed int64 // 0 = time-based
}

// Result is a generated maze with its endpoints and one shortest route.
type Result struct {
	Grid     *gridgraph.Grid
	Start    gridgraph.Coord
	Goal     gridgraph.Coord
	Solution []gridgraph.Coord
}

var (
	jumps = [4]gridgraph.Coord{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}
)

// Generate carves a maze with a randomized depth-first backtracker, then
// optionally braids dead ends into loops without opening 2×2 plazas or
// leaving isolated pillars. Start is (1,1), goal the opposite room.
//
// Complexity: O(R×C) time and memory.
func Generate(cfg Config) (*Result, error) {
	rows, cols := odd(cfg.Rows), odd(cfg.Cols)
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, cfg.Rows, cfg.Cols)
	}
	g, err := gridgraph.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.Len(); i++ {
		_ = g.SetWall(g.Coordinate(i), true)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := gridgraph.Coord{Row: 1, Col: 1}
	goal := gridgraph.Coord{Row: rows - 2, Col: cols - 2}

	carve(g, start, rng)
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	st := search.NewState(g)
	if _, err := bfs.Run(st, start, goal); err != nil {
		return nil, err
	}

	return &Result{Grid: g, Start: start, Goal: goal, Solution: st.Path(goal)}, nil
}

// carve runs the iterative recursive backtracker from start over odd rooms.
func carve(g *gridgraph.Grid, start gridgraph.Coord, rng *rand.Rand) {
	rooms := mapset.New[gridgraph.Coord]()
	rooms.Put(start)
	_ = g.SetWall(start, false)

	stack := []gridgraph.Coord{start}
	candidates := make([]gridgraph.Coord, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range jumps {
			next := cur.Add(d)
			if interior(g, next) && !rooms.Has(next) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		next := cur.Add(d)
		_ = g.SetWall(cur.Add(gridgraph.Coord{Row: d.Row / 2, Col: d.Col / 2}), false)
		_ = g.SetWall(next, false)
		rooms.Put(next)
		stack = append(stack, next)
	}
}

// braid opens one wall next to each chosen dead end, creating a loop.
func braid(g *gridgraph.Grid, probability float64, rng *rand.Rand) {
	for r := 1; r < g.Rows-1; r += 2 {
		for c := 1; c < g.Cols-1; c += 2 {
			room := gridgraph.Coord{Row: r, Col: c}
			if g.IsWall(room) || exits(g, room) != 1 || rng.Float64() >= probability {
				continue
			}
			var candidates []gridgraph.Coord
			for _, d := range jumps {
				wall := room.Add(gridgraph.Coord{Row: d.Row / 2, Col: d.Col / 2})
				if g.Walkable(room.Add(d)) && g.IsWall(wall) && safeToOpen(g, wall) {
					candidates = append(candidates, wall)
				}
			}
			if len(candidates) > 0 {
				_ = g.SetWall(candidates[rng.Intn(len(candidates))], false)
			}
		}
	}
}

// safeToOpen reports whether clearing w neither completes a 2×2 open square
// nor leaves a neighboring wall without any other wall beside it.
func safeToOpen(g *gridgraph.Grid, w gridgraph.Coord) bool {
	open := func(dr, dc int) bool { return g.Walkable(w.Add(gridgraph.Coord{Row: dr, Col: dc})) }

	// plazas
	for _, q := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		if open(q[0], 0) && open(0, q[1]) && open(q[0], q[1]) {
			return false
		}
	}

	// pillars
	for _, d := range gridgraph.Offsets4 {
		n := w.Add(d)
		if !g.InBounds(n) || !g.IsWall(n) {
			continue
		}
		walls := 0
		for _, d2 := range gridgraph.Offsets4 {
			nn := n.Add(d2)
			if nn != w && g.InBounds(nn) && g.IsWall(nn) {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}

	return true
}

func exits(g *gridgraph.Grid, c gridgraph.Coord) int {
	n := 0
	for _, d := range gridgraph.Offsets4 {
		if g.Walkable(c.Add(d)) {
			n++
		}
	}

	return n
}

// interior reports whether c lies inside the outer wall ring.
func interior(g *gridgraph.Grid, c gridgraph.Coord) bool {
	return c.Row > 0 && c.Row < g.Rows-1 && c.Col > 0 && c.Col < g.Cols-1
}

// odd rounds n down to an odd number.
func odd(n int) int {
	if n%2 == 0 {
		return n - 1
	}

	return n
}
