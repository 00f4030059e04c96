// File: gridgraph/types.go
// Core types and sentinel errors for grid models.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadWeight indicates a traversal weight below 1.
	ErrBadWeight = errors.New("gridgraph: weight must be at least 1")
	// ErrBadCell indicates an unknown character in a textual layout.
	ErrBadCell = errors.New("gridgraph: unknown layout cell")
	// ErrMissingEndpoint indicates a layout without a start or goal marker.
	ErrMissingEndpoint = errors.New("gridgraph: layout needs exactly one start and one goal")
	// ErrDuplicateEndpoint indicates a layout with two start or two goal markers.
	ErrDuplicateEndpoint = errors.New("gridgraph: duplicate start or goal marker")
)

// CellWall is the value From2D interprets as an impassable cell.
// Any negative value is a wall; 0 and 1 are open cells of default weight.
const CellWall = -1

// DefaultWeight is the traversal cost of a cell without an explicit weight.
const DefaultWeight int64 = 1

// Coord addresses one cell by row and column, both zero-based.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns the offset leading from d to c.
func (c Coord) Sub(d Coord) Coord {
	return Coord{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

// Offsets4 lists the four cardinal steps in the fixed order up, down, left, right.
// Every algorithm iterates neighbors in this order, which fixes tie-breaking.
var Offsets4 = [4]Coord{
	{Row: -1, Col: 0}, // up
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
	{Row: 0, Col: 1},  // right
}

// Grid is a rectangular field of cells. Its shape is fixed at construction;
// walls and weights may change between searches but never during one.
// Cells are stored row-major: index = Row*Cols + Col.
type Grid struct {
	Rows, Cols int
	walls      []bool
	weights    []int64 // 0 means DefaultWeight
}

// Layout is a grid together with its start and goal cells,
// as produced by ParseLayout.
type Layout struct {
	Grid        *Grid
	Start, Goal Coord
}
