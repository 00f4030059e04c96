// Package jps implements jump point search for 4-connected grids.
//
// JPS is A* over a reduced graph: instead of opening each neighbor, the
// search extends ("jumps") in a straight line from the current cell until
// it reaches the goal, runs into a wall or the grid edge (no jump point),
// or finds a forced neighbor.
//
// Forced neighbors:
//
//   - Moving horizontally by dc at (r,c): a perpendicular cell (r±1,c) is
//     open while the cell behind it, (r±1,c-dc), is blocked.
//   - Moving vertically by dr at (r,c): a perpendicular cell (r,c±1) is open
//     while (r-dr,c±1) is blocked.
//   - Moving vertically also stops where a horizontal jump from the current
//     cell, right or left, finds a jump point.
//
// Successors of a jump point are jumps in every direction except back toward
// its parent; the start jumps in all four. The cost between two jump points
// is their Manhattan distance, so g stays the exact hop count.
//
// Every cell a jump touches is marked visited and appended to the visited
// order once, probes included. Once the goal is settled, predecessor links
// along each straight segment are filled in so that search.State.Path yields
// adjacent steps. Jump points off the final path keep links to their jump
// parent.
//
// Complexity (N = R×C):
//
//   - Time:   O(N log N) heap work; jumps may rescan cells, bounded by O(N) each.
//   - Memory: O(N)
package jps
