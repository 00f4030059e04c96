// Package search holds what every gridpath algorithm shares: the per-search
// transient table, the neighbor policy, the path reconstructor, the Manhattan
// heuristic and the Strategy contract.
//
// What
//
//   - State is a caller-owned table of Records, one per grid cell, holding the
//     visited flag, cost so far (g), heuristic (h), f = g+h and predecessor.
//   - Neighbors yields in-bounds 4-connected neighbors in the fixed order
//     up, down, left, right, filtered by walls or by walls and visited flags.
//   - Path walks predecessor links from the goal back to the first cell
//     without one and returns the cells start-first.
//   - Validate checks coordinates once per run and claims the State.
//   - OpenSet is the indexed priority queue of the best-first searches.
//
// Why
//
//   - The grid stays read-only geometry; any number of searches can share it
//     as long as each owns its State.
//   - One neighbor order for all algorithms fixes every tie-break.
//
// Lifecycle
//
//	st := search.NewState(g)        // fresh, already reset
//	order, err := bfs.Run(st, s, t) // claims st
//	path := st.Path(t)              // path[0] != s means unreachable
//	st.Reset()                      // required before the next run
//
// Errors
//
//   - ErrNilState     if the State or its grid is nil.
//   - ErrOutOfBounds  if start or goal lies outside the grid.
//   - ErrWallEndpoint if start or goal is a wall.
//   - ErrDirtyState   if the State was used by a previous run without Reset.
package search
