package scenario

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for scenario loading and editing.
var (
	// ErrNoScenario indicates a file without any scenario block.
	ErrNoScenario = errors.New("scenario: file defines no scenario")
	// ErrScenarioNotFound indicates a name that matches no scenario block.
	ErrScenarioNotFound = errors.New("scenario: scenario not found")
	// ErrBadCoord indicates a coordinate that is not [row, col] inside the grid.
	ErrBadCoord = errors.New("scenario: coordinate must be [row, col] inside the grid")
	// ErrNoDimensions indicates non-positive rows or cols.
	ErrNoDimensions = errors.New("scenario: rows and cols must be positive")
	// ErrDimensionMismatch indicates rows or cols disagreeing with the layout.
	ErrDimensionMismatch = errors.New("scenario: rows and cols disagree with layout")
	// ErrEndpointWall indicates a wall on the start or goal cell.
	ErrEndpointWall = errors.New("scenario: start and goal cannot be walls")
	// ErrEndpointClash indicates start and goal placed on the same cell.
	ErrEndpointClash = errors.New("scenario: start and goal must differ")
	// ErrBadSpeed indicates an unknown replay speed name.
	ErrBadSpeed = errors.New("scenario: speed must be fast, medium or slow")
)

// Defaults of a scenario block that omits the attribute.
const (
	DefaultRows      = 25
	DefaultCols      = 40
	DefaultAlgorithm = engine.Dijkstra
	DefaultSpeed     = Medium
)

var (
	// DefaultStart and DefaultGoal are clamped into smaller grids.
	DefaultStart = gridgraph.Coord{Row: 5, Col: 5}
	DefaultGoal  = gridgraph.Coord{Row: 20, Col: 30}
)

// Speed is the replay pace of the visited sequence.
type Speed uint8

const (
	Fast Speed = iota
	Medium
	Slow
)

// PathDelay is the pause between two path cells at every speed.
const PathDelay = 50 * time.Millisecond

var speedNames = [...]string{Fast: "fast", Medium: "medium", Slow: "slow"}

// ParseSpeed resolves "fast", "medium" or "slow".
func ParseSpeed(name string) (Speed, error) {
	for i, n := range speedNames {
		if n == name {
			return Speed(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadSpeed, name)
}

// String returns the speed name.
func (s Speed) String() string {
	if int(s) < len(speedNames) {
		return speedNames[s]
	}

	return fmt.Sprintf("Speed(%d)", uint8(s))
}

// Delay is the pause between two visited cells: 10ms fast, 30ms medium, 70ms slow.
func (s Speed) Delay() time.Duration {
	switch s {
	case Fast:
		return 10 * time.Millisecond
	case Slow:
		return 70 * time.Millisecond
	default:
		return 30 * time.Millisecond
	}
}

// Scenario is one loaded grid together with its endpoints and run settings.
type Scenario struct {
	Name      string
	Grid      *gridgraph.Grid
	Start     gridgraph.Coord
	Goal      gridgraph.Coord
	Algorithm engine.Kind
	Speed     Speed
}
