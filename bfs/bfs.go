package bfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Name identifies this algorithm.
const Name = "bfs"

// Strategy is Run as a search.Strategy.
var Strategy = search.NewStrategy(Name, Run)

// walker encapsulates mutable BFS state.
type walker struct {
	st    *search.State
	goal  gridgraph.Coord
	queue []gridgraph.Coord
	order []gridgraph.Coord
	nbuf  []gridgraph.Coord
}

// Run performs breadth-first search on st from start to goal and returns the
// cells in dequeue order. Predecessor links and hop distances are written to st.
func Run(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	n := st.Grid().Len()
	w := &walker{
		st:    st,
		goal:  goal,
		queue: make([]gridgraph.Coord, 0, n),
		order: make([]gridgraph.Coord, 0, n),
		nbuf:  make([]gridgraph.Coord, 0, 4),
	}

	// Seed queue with start (no parent)
	st.SetCost(start, 0, 0)
	st.MarkVisited(start)
	w.queue = append(w.queue, start)
	w.loop()

	return w.order, nil
}

// loop processes the queue until the goal is dequeued or the queue empties.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		cur := w.queue[head]
		w.order = append(w.order, cur)
		if cur == w.goal {
			return
		}
		w.enqueueNeighbors(cur)
	}
}

// enqueueNeighbors marks each unvisited open neighbor visited, links it to
// cur, records its depth and appends it to the queue.
func (w *walker) enqueueNeighbors(cur gridgraph.Coord) {
	depth := w.st.At(cur).Dist + 1
	w.nbuf = w.st.Neighbors(cur, search.ExcludeWallsAndVisited, w.nbuf[:0])
	for _, nb := range w.nbuf {
		w.st.MarkVisited(nb)
		w.st.SetPrev(nb, cur)
		w.st.SetCost(nb, depth, 0)
		w.queue = append(w.queue, nb)
	}
}
