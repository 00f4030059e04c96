package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Algorithm identifiers.
const (
	Name         = "dijkstra"
	WeightedName = "dijkstraWeighted"
)

// Strategies exposing both variants as search.Strategy.
var (
	Strategy         = search.NewStrategy(Name, Run)
	WeightedStrategy = search.NewStrategy(WeightedName, RunWeighted)
)

// Run is Search with unit edge costs.
func Run(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	return Search(st, start, goal)
}

// RunWeighted is Search where entering a cell costs its grid weight.
func RunWeighted(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	return Search(st, start, goal, WithWeighted())
}

// Search computes shortest distances from start on st's grid until goal is
// settled, and returns cells in settle order. Distances (Record.Dist) and
// predecessor links are written to st.
//
// Termination:
//
//   - goal is settled (returned immediately), or
//   - the heap empties or its minimum exceeds MaxDistance (goal unreachable).
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Search(st *search.State, start, goal gridgraph.Coord, opts ...Option) ([]gridgraph.Coord, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs and claim the state
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	n := st.Grid().Len()
	r := &runner{
		st:      st,
		grid:    st.Grid(),
		options: cfg,
		goal:    goal,
		pq:      make(nodePQ, 0, n),
		order:   make([]gridgraph.Coord, 0, n),
		nbuf:    make([]gridgraph.Coord, 0, 4),
	}
	r.init(start)
	r.process()

	return r.order, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	st      *search.State     // Transient table: distances, visited flags, predecessors.
	grid    *gridgraph.Grid   // Read-only geometry.
	options Options           // Configuration options.
	goal    gridgraph.Coord   // Search stops when this cell is settled.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	order   []gridgraph.Coord // Settle order.
	nbuf    []gridgraph.Coord // Reused neighbor buffer.
}

// init sets the start distance to zero and pushes it onto the heap.
func (r *runner) init(start gridgraph.Coord) {
	r.st.SetCost(start, 0, 0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: start, idx: r.grid.Index(start), dist: 0})
}

// process repeatedly extracts the cell with minimum distance, settles it and
// relaxes its neighbors, until the goal is settled or nothing is left.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell

		// 2) Skip stale heap entries.
		if r.st.Visited(u) {
			continue
		}

		// 3) Beyond MaxDistance nothing further is settled.
		if item.dist > r.options.MaxDistance {
			return
		}

		// 4) Settle u.
		r.st.MarkVisited(u)
		r.order = append(r.order, u)
		if u == r.goal {
			return
		}

		// 5) Relax its unvisited open neighbors.
		r.relax(u, item.dist)
	}
}

// relax tries to improve the distance of every unvisited open neighbor of u.
// On strict improvement it updates distance and predecessor and pushes a new
// heap entry (lazy decrease-key) stamped with the current settle count.
func (r *runner) relax(u gridgraph.Coord, du int64) {
	round := len(r.order)
	r.nbuf = r.st.Neighbors(u, search.ExcludeWallsAndVisited, r.nbuf[:0])
	for _, v := range r.nbuf {
		w := int64(1)
		if r.options.Weighted {
			w = r.grid.Weight(v)
		}
		newDist := search.AddCost(du, w)
		if newDist > r.options.MaxDistance || newDist >= r.st.At(v).Dist {
			continue
		}
		r.st.SetCost(v, newDist, 0)
		r.st.SetPrev(v, u)
		heap.Push(&r.pq, &nodeItem{cell: v, round: round, idx: r.grid.Index(v), dist: newDist})
	}
}

// nodeItem represents a cell and its tentative distance from the start.
type nodeItem struct {
	cell  gridgraph.Coord
	round int   // cells settled when pushed
	idx   int   // row-major index
	dist  int64 // distance from start
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, round, idx) ascending.
// Among equal distances a cell reached in an earlier round settles first, and
// cells reached in the same round settle in row-major order. This is the
// order a stable sort of the unvisited cells by distance yields when it is
// repeated after every settle.
//
// We use the “lazy-decrease-key” approach: when we find a shorter distance to a
// cell, we push a new *nodeItem. The outdated entry is ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push round, then by row-major index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].round != pq[j].round {
		return pq[i].round < pq[j].round
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
