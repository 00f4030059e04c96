// Package scenario loads grids, endpoints and run settings from HCL files
// and implements the editing rules of an interactive grid.
//
// File format:
//
//	scenario "gap" {
//	  rows      = 10
//	  cols      = 20
//	  start     = [5, 1]
//	  goal      = [5, last_col - 1]
//	  algorithm = "astar"
//	  speed     = "fast"
//	  walls     = [[0, 0], [1, 1]]
//
//	  wall_line {
//	    from = [0, 10]
//	    to   = [last_row - 1, 10]
//	  }
//
//	  weight {
//	    at    = [4, 4]
//	    value = 5
//	  }
//	}
//
// Decoding runs in two phases: rows, cols and layout are read first; the
// rest of the block is then evaluated with the variables rows, cols,
// last_row and last_col. A layout attribute (a list of strings in the
// gridgraph.ParseLayout alphabet) replaces rows and cols and supplies the
// endpoints unless start or goal override them.
//
// Defaults: 25×40 grid, start (5,5), goal (20,30) (both clamped into
// smaller grids), algorithm "dijkstra", speed "medium". A scenario whose
// start and goal land on the same cell, explicitly or by clamping, fails
// with ErrEndpointClash.
//
// Editing: ToggleWall never walls the start or goal; MoveStart and MoveGoal
// refuse walls, the opposite endpoint, and out-of-grid cells.
//
// Errors:
//
//   - ErrNoScenario, ErrScenarioNotFound, ErrBadCoord, ErrNoDimensions,
//     ErrDimensionMismatch, ErrEndpointWall, ErrEndpointClash, ErrBadSpeed.
//   - HCL diagnostics are returned wrapped with the file name.
package scenario
