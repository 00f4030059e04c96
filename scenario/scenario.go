package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Default returns the stock 25×40 open grid with start (5,5), goal (20,30),
// Dijkstra at medium speed.
func Default() *Scenario {
	g, _ := gridgraph.New(DefaultRows, DefaultCols)

	return &Scenario{
		Name:      "default",
		Grid:      g,
		Start:     DefaultStart,
		Goal:      DefaultGoal,
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
	}
}

// ToggleWall flips the wall flag of c. The start and goal cells are never
// walled: toggling them returns ErrEndpointWall and leaves the grid alone.
func (s *Scenario) ToggleWall(c gridgraph.Coord) error {
	if !s.Grid.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrBadCoord, c)
	}
	if c == s.Start || c == s.Goal {
		return fmt.Errorf("%w: %v", ErrEndpointWall, c)
	}

	return s.Grid.SetWall(c, !s.Grid.IsWall(c))
}

// MoveStart places the start on c, which must be an open cell other than the goal.
func (s *Scenario) MoveStart(c gridgraph.Coord) error {
	if err := s.checkEndpoint(c, s.Goal); err != nil {
		return err
	}
	s.Start = c

	return nil
}

// MoveGoal places the goal on c, which must be an open cell other than the start.
func (s *Scenario) MoveGoal(c gridgraph.Coord) error {
	if err := s.checkEndpoint(c, s.Start); err != nil {
		return err
	}
	s.Goal = c

	return nil
}

func (s *Scenario) checkEndpoint(c, other gridgraph.Coord) error {
	switch {
	case !s.Grid.InBounds(c):
		return fmt.Errorf("%w: %v", ErrBadCoord, c)
	case s.Grid.IsWall(c):
		return fmt.Errorf("%w: %v", ErrEndpointWall, c)
	case c == other:
		return fmt.Errorf("%w: %v", ErrEndpointClash, c)
	}

	return nil
}

// clamp moves c into the grid bounds.
func clamp(c gridgraph.Coord, g *gridgraph.Grid) gridgraph.Coord {
	return gridgraph.Coord{Row: min(max(c.Row, 0), g.Rows-1), Col: min(max(c.Col, 0), g.Cols-1)}
}
