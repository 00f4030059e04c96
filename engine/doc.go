// Package engine runs the gridpath search algorithms behind one entry point.
//
// What:
//
//   - Kind names each registered algorithm (bfs, dfs, recursiveDFS, dijkstra,
//     dijkstraWeighted, astar, greedy, bidirectional, jump); ParseKind maps
//     the textual names used by scenario files and the CLI.
//   - Engine.Run allocates a fresh search.State, runs one algorithm, and
//     returns an immutable Result (visited order, path, found flag, cost).
//   - Engine.Compare runs several algorithms on the same grid concurrently
//     and returns the results in request order.
//
// Why:
//
//   - Hosts (CLI, renderers, terminal replay) should not juggle States,
//     Reset calls, or path reconstruction themselves.
//
// Observability:
//
//   - WithLogger: one debug record per search, a warning when the goal
//     is unreachable.
//   - WithMetrics: Prometheus counters and histograms (see NewMetrics).
//   - WithTracer: one OpenTelemetry span per search; defaults to the
//     global provider, which is a no-op until the host installs one.
//
// Errors:
//
//   - ErrNilGrid, ErrUnknownAlgorithm.
//   - search.ErrOutOfBounds and search.ErrWallEndpoint, wrapped with the
//     algorithm name.
//   - An unreachable goal is not an error: Result.Found is false.
package engine
