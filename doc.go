// Package gridpath is a playground for shortest-path search on 2D grids:
// nine interchangeable algorithms over one grid model, with tools to load,
// generate, compare, draw and replay searches.
//
// What is inside?
//
//	gridgraph/      Grid, Coord, walls and weights, ASCII layouts, regions, wall breach
//	search/         per-search state table, neighbor policy, path reconstruction, heuristic
//	bfs/ dfs/       breadth-first, depth-first (iterative and recursive)
//	dijkstra/       Dijkstra, unit and weighted
//	astar/          A* and greedy best-first
//	bidirectional/  BFS from both ends
//	jps/            4-connected jump point search
//	engine/         algorithm registry, Run and Compare, logging, metrics, tracing
//	scenario/       HCL scenario files and grid editing rules
//	maze/           seeded maze generator
//	render/         ASCII and PNG output
//	replay/         terminal animation
//	cmd/gridpath    command-line front end
//
// Every algorithm has the same shape:
//
//	st := search.NewState(grid)
//	visited, err := bfs.Run(st, start, goal)
//	path := st.Path(goal) // [goal] alone when unreachable
//
// The grid is only read during a search; all transient data lives in the
// State, so several searches may share one grid concurrently.
//
// Quick ASCII example:
//
//	S..#...
//	...#...
//	.......
//	...#..G
//
// is a 4×7 grid with a wall broken by a single gap; every shortest-path
// algorithm routes through it in 9 steps.
package gridpath
