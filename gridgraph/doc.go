// Package gridgraph treats a rectangular field of cells as the graph every
// gridpath search walks.
//
// What:
//
//   - Grid stores the shape (Rows×Cols), wall flags and optional per-cell weights.
//   - Offsets4 fixes the neighbor order (up, down, left, right) for all searches.
//   - ParseLayout reads the '#', '.', '1'..'9', 'S', 'G' text alphabet.
//   - ConnectedComponents finds 4-connected open regions.
//   - MinBreach computes the fewest walls to clear so two cells connect (0-1 BFS).
//
// Why:
//
//   - One geometry shared read-only by many searches, each with its own transient table.
//   - Cheap reachability diagnostics when a search reports an unreachable goal.
//
// Complexity:
//
//   - New, From2D, Clone:  O(R×C) time and memory.
//   - ConnectedComponents: O(R×C) time and memory.
//   - MinBreach:           O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBadWeight: a weight below 1 was assigned.
//   - ErrBadCell, ErrMissingEndpoint, ErrDuplicateEndpoint: malformed text layout.
package gridgraph
