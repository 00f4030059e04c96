package search

import "github.com/katalvlaran/gridpath/gridgraph"

// Manhattan returns |Δrow| + |Δcol|, the exact hop distance between a and b
// on an open 4-connected grid and therefore an admissible heuristic.
func Manhattan(a, b gridgraph.Coord) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

// AddCost returns a+b for non-negative costs, saturating at Unreachable.
func AddCost(a, b int64) int64 {
	if a >= Unreachable-b {
		return Unreachable
	}

	return a + b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
