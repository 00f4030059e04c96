package dfs

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Algorithm identifiers.
const (
	Name          = "dfs"
	RecursiveName = "recursiveDFS"
)

// Strategies exposing both variants as search.Strategy.
var (
	Strategy          = search.NewStrategy(Name, Run)
	RecursiveStrategy = search.NewStrategy(RecursiveName, RunRecursive)
)

// Run performs iterative depth-first search from start to goal and returns
// cells in pop order. Neighbors are pushed up, down, left, right, so the
// rightmost open neighbor is explored first.
func Run(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	n := st.Grid().Len()
	order := make([]gridgraph.Coord, 0, n)
	stack := make([]gridgraph.Coord, 0, n)
	nbuf := make([]gridgraph.Coord, 0, 4)

	st.SetCost(start, 0, 0)
	st.MarkVisited(start)
	stack = append(stack, start)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)
		if cur == goal {
			break
		}

		depth := st.At(cur).Dist + 1
		nbuf = st.Neighbors(cur, search.ExcludeWallsAndVisited, nbuf[:0])
		for _, nb := range nbuf {
			st.MarkVisited(nb)
			st.SetPrev(nb, cur)
			st.SetCost(nb, depth, 0)
			stack = append(stack, nb)
		}
	}

	return order, nil
}

// dfsWalker encapsulates state during recursive DFS.
type dfsWalker struct {
	st    *search.State
	goal  gridgraph.Coord
	order []gridgraph.Coord
}

// RunRecursive performs depth-first search by recursion from start to goal
// and returns cells in entry order. Recursion stops as soon as the goal is
// entered.
func RunRecursive(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	if err := search.Validate(st, start, goal); err != nil {
		return nil, err
	}

	w := &dfsWalker{st: st, goal: goal, order: make([]gridgraph.Coord, 0, st.Grid().Len())}
	w.traverse(start, 0)

	return w.order, nil
}

// traverse enters cur at the given depth and reports whether the goal was
// reached in its subtree.
func (w *dfsWalker) traverse(cur gridgraph.Coord, depth int64) bool {
	w.st.MarkVisited(cur)
	w.st.SetCost(cur, depth, 0)
	w.order = append(w.order, cur)
	if cur == w.goal {
		return true
	}

	// Neighbors is evaluated once; siblings entered by deeper calls are skipped below.
	for _, nb := range w.st.Neighbors(cur, search.ExcludeWallsAndVisited, nil) {
		if w.st.Visited(nb) {
			continue
		}
		w.st.SetPrev(nb, cur)
		if w.traverse(nb, depth+1) {
			return true
		}
	}

	return false
}
