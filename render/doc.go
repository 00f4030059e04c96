// Package render draws grids and search results for people: plain text for
// terminals and logs, PNG images (via fogleman/gg) for reports.
//
// A Scene bundles the grid, its endpoints and an optional engine.Result.
// Layers stack endpoints over path over visited cells over the grid; the
// path is drawn only when the result found the goal.
package render
