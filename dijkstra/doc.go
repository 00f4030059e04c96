// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// gridgraph.Grid, with unit edge costs (Run) or per-cell weights
// (RunWeighted).
//
// Dijkstra settles cells in order of increasing distance from the start
// using a min-heap priority queue, relaxing each settled cell's unvisited
// open neighbors. Moving onto a cell costs 1, or that cell's weight in the
// weighted variant. The search returns as soon as the goal is settled.
//
// Complexity (N = R×C):
//
//   - Time:  O(N log N)
//   - Each cell is settled at most once: N extractions from the heap.
//   - Each relaxation may push a new entry: up to 4N pushes.
//   - Space: O(N)
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal distances are broken by the number of cells settled when the
//     distance was assigned, then by row-major cell index, lowest first.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//
// Options:
//
//	– WithWeighted():   use grid weights as entry costs.
//	– WithMaxDistance:  optional cap on distances to explore.
//
// Example usage:
//
//	st := search.NewState(g)
//	order, err := dijkstra.RunWeighted(st, start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("cost:", st.At(goal).Dist, "path:", st.Path(goal))
package dijkstra
