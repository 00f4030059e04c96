// Package dfs implements depth-first search on a gridgraph.Grid in two
// variants sharing the same neighbor order:
//
//   - Run:          explicit LIFO stack; a cell is marked visited when pushed.
//   - RunRecursive: call recursion with a found short-circuit; a cell is
//     marked visited when entered.
//
// Neither variant guarantees a shortest path, only some path or none.
// The predecessor of a cell is written exactly once, when the cell is first
// reached, so predecessor chains never contain cycles.
//
// Complexity:
//
//   - Time:   O(R×C) for both variants.
//   - Memory: O(R×C) for the stack (explicit or call stack) and the order slice.
//
// Errors:
//
//   - search.ErrNilState, search.ErrOutOfBounds, search.ErrWallEndpoint,
//     search.ErrDirtyState from input validation.
package dfs
