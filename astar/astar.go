package astar

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Algorithm identifiers.
const (
	Name       = "astar"
	GreedyName = "greedy"
)

// Strategies exposing both variants as search.Strategy.
var (
	Strategy       = search.NewStrategy(Name, Run)
	GreedyStrategy = search.NewStrategy(GreedyName, RunGreedy)
)

// rank selects the heap priority from a cell's g and h.
type rank func(g, h int64) int64

func byF(g, h int64) int64 { return search.AddCost(g, h) }

func byH(_, h int64) int64 { return h }

// Run performs A* from start to goal and returns cells in settle order.
// g, h, f and predecessor links are written to st.
func Run(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	return run(st, start, goal, byF)
}

// RunGreedy performs greedy best-first search: the open set is ranked by the
// heuristic only. g and predecessor still follow the cheapest discovered
// route to each open cell.
func RunGreedy(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	return run(st, start, goal, byH)
}

// runner holds the mutable state for a single best-first execution.
type runner struct {
	st    *search.State
	goal  gridgraph.Coord
	rank  rank
	open  *search.OpenSet
	order []gridgraph.Coord
	nbuf  []gridgraph.Coord
}

func run(st *search.State, start, goal gridgraph.Coord, rk rank) ([]gridgraph.Coord, error) {
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	r := &runner{
		st:    st,
		goal:  goal,
		rank:  rk,
		open:  search.NewOpenSet(st.Grid()),
		order: make([]gridgraph.Coord, 0, st.Grid().Len()),
		nbuf:  make([]gridgraph.Coord, 0, 4),
	}
	r.offer(start, 0)
	r.loop()

	return r.order, nil
}

// loop pops the best open cell until the goal is settled or the open set is empty.
func (r *runner) loop() {
	for r.open.Len() > 0 {
		cur := r.open.Pop()
		r.st.MarkVisited(cur)
		r.order = append(r.order, cur)
		if cur == r.goal {
			return
		}

		g := r.st.At(cur).Dist + 1
		r.nbuf = r.st.Neighbors(cur, search.ExcludeWallsAndVisited, r.nbuf[:0])
		for _, nb := range r.nbuf {
			if g >= r.st.At(nb).Dist {
				continue
			}
			r.st.SetPrev(nb, cur)
			r.offer(nb, g)
		}
	}
}

// offer records cost g for c and opens it, or re-ranks it if already open.
func (r *runner) offer(c gridgraph.Coord, g int64) {
	h := search.Manhattan(c, r.goal)
	r.st.SetCost(c, g, h)
	r.open.Offer(c, r.rank(g, h))
}
