// Package replay animates a finished search in the terminal with tcell.
//
// Visited cells appear in settle order with a per-cell pause that follows
// the scenario speed (fast 10ms, medium 30ms, slow 70ms); the path then
// appears at 50ms per cell. The start and goal cells are never repainted.
package replay
