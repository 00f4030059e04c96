package bidirectional

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Name identifies this algorithm.
const Name = "bidirectional"

// Strategy is Run as a search.Strategy.
var Strategy = search.NewStrategy(Name, Run)

// side is one growing BFS tree.
type side struct {
	queue []gridgraph.Coord
	seen  mapset.Set[gridgraph.Coord]
	prev  map[gridgraph.Coord]gridgraph.Coord
}

func newSide(root gridgraph.Coord) *side {
	s := &side{
		queue: []gridgraph.Coord{root},
		seen:  mapset.New[gridgraph.Coord](),
		prev:  make(map[gridgraph.Coord]gridgraph.Coord),
	}
	s.seen.Put(root)

	return s
}

// chain walks prev links from c to the root of s, c first.
func (s *side) chain(c gridgraph.Coord) []gridgraph.Coord {
	out := []gridgraph.Coord{c}
	for {
		p, ok := s.prev[c]
		if !ok {
			return out
		}
		out = append(out, p)
		c = p
	}
}

// walker holds the mutable state of one bidirectional run.
type walker struct {
	st    *search.State
	order []gridgraph.Coord
	nbuf  []gridgraph.Coord
}

// Run searches from both start and goal and returns settled cells in the
// order they were dequeued. On success st holds predecessor links and hop
// distances along the joined path only.
func Run(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	w := &walker{st: st, nbuf: make([]gridgraph.Coord, 0, 4)}
	if start == goal {
		st.MarkVisited(start)
		st.SetCost(start, 0, 0)
		return []gridgraph.Coord{start}, nil
	}

	fwd, bwd := newSide(start), newSide(goal)
	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if meet, ok := w.expand(fwd, bwd); ok {
			w.link(fwd.chain(meet), bwd, meet)
			break
		}
		if meet, ok := w.expand(bwd, fwd); ok {
			w.link(fwd.chain(meet), bwd, meet)
			break
		}
	}

	return w.order, nil
}

// expand settles every cell of s's current layer and queues the next layer.
// It stops at the first discovered cell already seen by other.
func (w *walker) expand(s, other *side) (gridgraph.Coord, bool) {
	layer := s.queue
	s.queue = make([]gridgraph.Coord, 0, 2*len(layer))
	for _, cur := range layer {
		w.st.MarkVisited(cur)
		w.order = append(w.order, cur)

		w.nbuf = w.st.Neighbors(cur, search.ExcludeWalls, w.nbuf[:0])
		for _, nb := range w.nbuf {
			if s.seen.Has(nb) {
				continue
			}
			s.seen.Put(nb)
			s.prev[nb] = cur
			s.queue = append(s.queue, nb)
			if other.seen.Has(nb) {
				return nb, true
			}
		}
	}

	return gridgraph.Coord{}, false
}

// link joins start → meet with the goal side's chain past meet and writes
// the result into the state as predecessor links.
func (w *walker) link(head []gridgraph.Coord, bwd *side, meet gridgraph.Coord) {
	// head is meet → start; reverse it
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	path := head
	if p, ok := bwd.prev[meet]; ok {
		path = append(path, bwd.chain(p)...)
	}

	w.st.ClearPrev(path[0])
	w.st.SetCost(path[0], 0, 0)
	for i := 1; i < len(path); i++ {
		w.st.SetPrev(path[i], path[i-1])
		w.st.SetCost(path[i], int64(i), 0)
	}
}
