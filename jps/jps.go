package jps

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Name identifies this algorithm.
const Name = "jump"

// Strategy is Run as a search.Strategy.
var Strategy = search.NewStrategy(Name, Run)

var (
	right = gridgraph.Coord{Row: 0, Col: 1}
	left  = gridgraph.Coord{Row: 0, Col: -1}
)

// runner holds the mutable state of one jump point search.
type runner struct {
	st      *search.State
	grid    *gridgraph.Grid
	goal    gridgraph.Coord
	open    *search.OpenSet
	closed  []bool
	touched []gridgraph.Coord
}

// Run performs jump point search from start to goal and returns every
// touched cell in first-touch order.
func Run(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	g := st.Grid()
	r := &runner{
		st:      st,
		grid:    g,
		goal:    goal,
		open:    search.NewOpenSet(g),
		closed:  make([]bool, g.Len()),
		touched: make([]gridgraph.Coord, 0, g.Len()),
	}
	r.touch(start)
	r.st.SetCost(start, 0, search.Manhattan(start, goal))
	r.open.Offer(start, r.st.At(start).F)

	for r.open.Len() > 0 {
		cur := r.open.Pop()
		r.closed[g.Index(cur)] = true
		if cur == goal {
			r.unfold(goal)
			break
		}
		r.expand(cur)
	}

	return r.touched, nil
}

// expand jumps from cur in every allowed direction and opens or improves
// each jump point found.
func (r *runner) expand(cur gridgraph.Coord) {
	back, hasParent := r.backDir(cur)
	gCur := r.st.At(cur).Dist
	for _, d := range gridgraph.Offsets4 {
		if hasParent && d == back {
			continue
		}
		jp, ok := r.jump(cur.Add(d), d)
		if !ok || r.closed[r.grid.Index(jp)] {
			continue
		}
		ng := gCur + search.Manhattan(cur, jp)
		if ng >= r.st.At(jp).Dist {
			continue
		}
		r.st.SetCost(jp, ng, search.Manhattan(jp, r.goal))
		r.st.SetPrev(jp, cur)
		r.open.Offer(jp, r.st.At(jp).F)
	}
}

// backDir returns the unit step from cur toward its jump parent.
func (r *runner) backDir(cur gridgraph.Coord) (gridgraph.Coord, bool) {
	p, ok := r.st.Prev(cur)
	if !ok {
		return gridgraph.Coord{}, false
	}

	return unit(p.Sub(cur)), true
}

// jump walks from c in direction d and returns the first jump point.
func (r *runner) jump(c, d gridgraph.Coord) (gridgraph.Coord, bool) {
	for ; r.grid.Walkable(c); c = c.Add(d) {
		r.touch(c)
		if c == r.goal {
			return c, true
		}
		if d.Col != 0 {
			if r.forced(c, gridgraph.Coord{Row: 1}, d) {
				return c, true
			}
			continue
		}
		if r.forced(c, gridgraph.Coord{Col: 1}, d) {
			return c, true
		}
		if _, ok := r.jump(c.Add(right), right); ok {
			return c, true
		}
		if _, ok := r.jump(c.Add(left), left); ok {
			return c, true
		}
	}

	return gridgraph.Coord{}, false
}

// forced reports whether c, entered by step d, has a forced neighbor on
// either side along axis perp: the side cell is open and the cell behind it
// is blocked.
func (r *runner) forced(c, perp, d gridgraph.Coord) bool {
	for _, side := range [2]gridgraph.Coord{{Row: -perp.Row, Col: -perp.Col}, perp} {
		n := c.Add(side)
		if r.grid.Walkable(n) && !r.grid.Walkable(n.Sub(d)) {
			return true
		}
	}

	return false
}

// touch marks c visited and records it the first time.
func (r *runner) touch(c gridgraph.Coord) {
	if r.st.Visited(c) {
		return
	}
	r.st.MarkVisited(c)
	r.touched = append(r.touched, c)
}

// unfold replaces the jump-point chain ending at goal with single-step
// predecessor links and hop distances.
func (r *runner) unfold(goal gridgraph.Coord) {
	points := []gridgraph.Coord{goal}
	for c := goal; ; {
		p, ok := r.st.Prev(c)
		if !ok {
			break
		}
		points = append(points, p)
		c = p
	}

	var g int64
	for i := len(points) - 1; i > 0; i-- {
		from, to := points[i], points[i-1]
		d := unit(to.Sub(from))
		for c := from; c != to; {
			next := c.Add(d)
			g++
			r.st.SetPrev(next, c)
			r.st.SetCost(next, g, search.Manhattan(next, r.goal))
			c = next
		}
	}
}

// unit reduces an axis-aligned offset to a single step.
func unit(d gridgraph.Coord) gridgraph.Coord {
	return gridgraph.Coord{Row: sign(d.Row), Col: sign(d.Col)}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}
