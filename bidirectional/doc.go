// Package bidirectional implements bidirectional breadth-first search on a
// gridgraph.Grid: one FIFO frontier grows from the start, another from the
// goal, until a cell discovered by one side is already known to the other.
//
// What
//
//   - Each side keeps its own seen set and predecessor map.
//   - The sides alternate one whole BFS layer at a time, start side first.
//     Stepping by layers makes the first meeting a shortest path.
//   - Settled cells of both sides form the visited order, interleaved by layer.
//   - On meeting, the start-side chain (start → meet) and the goal-side chain
//     (meet → goal) are joined and written into the search.State as
//     predecessor links, so State.Path works unchanged.
//
// Termination
//
//	Meeting found, or either frontier exhausted (goal unreachable).
//
// Complexity (N = R×C)
//
//   - Time:   O(N)
//   - Memory: O(N) for the two seen sets and predecessor maps
package bidirectional
