// Package astar implements informed best-first search on a gridgraph.Grid:
// A* (Run) ranked by f = g + h, and greedy best-first (RunGreedy) ranked by h
// alone, both with the Manhattan heuristic.
//
// What
//
//   - Open set: search.OpenSet, an indexed binary heap. Among equal priorities
//     a cell that reached its priority in an earlier round pops first; cells
//     opened in the same round pop in offer order.
//   - A cell already in the open set is updated in place with heap.Fix when a
//     cheaper g is found; the heap never holds duplicates.
//   - A cell is marked visited when popped and is never reopened.
//
// Guarantees
//
//   - Run is optimal on unit-cost grids: Manhattan distance never
//     overestimates the 4-connected hop distance.
//   - RunGreedy is not optimal. It usually settles fewer cells but can return
//     a strictly longer path than Run.
//
// Complexity (N = R×C)
//
//   - Time:   O(N log N)
//   - Memory: O(N)
//
// Errors
//
//   - search.ErrNilState, search.ErrOutOfBounds, search.ErrWallEndpoint,
//     search.ErrDirtyState from input validation.
package astar
