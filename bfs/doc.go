// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the settle order and leaving hop-count shortest-path links
// in the caller's search.State.
//
// What
//
//   - Explore cells in non-decreasing hop distance from the start.
//   - Each cell is marked visited when enqueued, so it is enqueued once.
//   - Neighbors are enqueued in the fixed order up, down, left, right.
//   - Stops when the goal is dequeued or the queue empties.
//
// Why
//
//   - Shortest paths on unit-cost grids in O(R×C) time.
//   - Reference behavior the other algorithms are tested against.
//
// Determinism
//
//	The queue is FIFO and neighbor order is fixed, so the visit sequence is
//	fully reproducible for a given grid, start and goal.
//
// Complexity (N = R×C)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue and the order slice
//
// Usage
//
//	st := search.NewState(g)
//	order, err := bfs.Run(st, start, goal)
//	if err != nil {
//	    // ErrNilState, ErrOutOfBounds, ErrWallEndpoint or ErrDirtyState from search
//	}
//	path := st.Path(goal) // path[0] == start iff the goal was reached
//
// Errors
//
//   - search.ErrNilState, search.ErrOutOfBounds, search.ErrWallEndpoint,
//     search.ErrDirtyState from input validation.
package bfs
