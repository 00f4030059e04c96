package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for run preconditions.
var (
	// ErrNilState is returned when a nil State (or a State without a grid) is passed.
	ErrNilState = errors.New("search: state is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: coordinate out of bounds")

	// ErrWallEndpoint is returned when start or goal is a wall.
	ErrWallEndpoint = errors.New("search: start or goal is a wall")

	// ErrDirtyState is returned when a State is reused without Reset.
	ErrDirtyState = errors.New("search: state used by a previous run; call Reset")
)

// Unreachable is the cost of a cell no search has reached yet.
// It is larger than any finite path cost; AddCost saturates at it.
const Unreachable int64 = math.MaxInt64

// NoPrev marks a Record without a predecessor.
const NoPrev = -1

// Filter selects which neighbors Neighbors yields.
type Filter uint8

const (
	// ExcludeWalls yields every open neighbor.
	ExcludeWalls Filter = iota
	// ExcludeWallsAndVisited additionally skips neighbors already marked visited.
	ExcludeWallsAndVisited
)

// Record is the transient search data of one cell.
type Record struct {
	Visited bool
	Dist    int64 // cost so far (g)
	H       int64 // heuristic estimate to goal
	F       int64 // Dist + H, saturating
	Prev    int   // row-major index of the predecessor, or NoPrev
}

// Func runs one search from start to goal on st and returns the cells in the
// order they were settled. Predecessor links are left in st for Path.
type Func func(st *State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error)

// Strategy is one interchangeable search algorithm.
type Strategy interface {
	// Name returns the algorithm's stable identifier.
	Name() string
	// Run executes the search; see Func.
	Run(st *State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error)
}

// NewStrategy adapts fn into a Strategy called name.
func NewStrategy(name string, fn Func) Strategy {
	return funcStrategy{name: name, fn: fn}
}

type funcStrategy struct {
	name string
	fn   Func
}

func (s funcStrategy) Name() string { return s.name }

func (s funcStrategy) Run(st *State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	return s.fn(st, start, goal)
}
