package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// State is the per-search transient table for one grid.
// A State serves one search at a time; Reset it before the next.
// Distinct States over the same grid may be used concurrently.
type State struct {
	grid    *gridgraph.Grid
	records []Record
	claimed bool
}

// NewState allocates a reset State covering every cell of g.
// Complexity: O(R×C).
func NewState(g *gridgraph.Grid) *State {
	st := &State{grid: g}
	if g != nil {
		st.records = make([]Record, g.Len())
	}
	st.Reset()

	return st
}

// Grid returns the grid this State covers.
func (s *State) Grid() *gridgraph.Grid {
	return s.grid
}

// Reset clears every record: not visited, unreachable cost, no heuristic,
// no predecessor. Complexity: O(R×C).
func (s *State) Reset() {
	for i := range s.records {
		s.records[i] = Record{Dist: Unreachable, F: Unreachable, Prev: NoPrev}
	}
	s.claimed = false
}

// Claimed reports whether a run has used this State since the last Reset.
func (s *State) Claimed() bool {
	return s.claimed
}

// At returns the record of c. The caller must ensure c is in bounds.
func (s *State) At(c gridgraph.Coord) *Record {
	return &s.records[s.grid.Index(c)]
}

// Visited reports whether c has been marked visited.
func (s *State) Visited(c gridgraph.Coord) bool {
	return s.records[s.grid.Index(c)].Visited
}

// MarkVisited sets the visited flag of c.
func (s *State) MarkVisited(c gridgraph.Coord) {
	s.records[s.grid.Index(c)].Visited = true
}

// SetPrev links c back to p.
func (s *State) SetPrev(c, p gridgraph.Coord) {
	s.records[s.grid.Index(c)].Prev = s.grid.Index(p)
}

// ClearPrev removes the predecessor of c.
func (s *State) ClearPrev(c gridgraph.Coord) {
	s.records[s.grid.Index(c)].Prev = NoPrev
}

// Prev returns the predecessor of c, if any.
func (s *State) Prev(c gridgraph.Coord) (gridgraph.Coord, bool) {
	p := s.records[s.grid.Index(c)].Prev
	if p == NoPrev {
		return gridgraph.Coord{}, false
	}

	return s.grid.Coordinate(p), true
}

// SetCost stores g, h and the saturated f = g+h for c.
func (s *State) SetCost(c gridgraph.Coord, g, h int64) {
	r := &s.records[s.grid.Index(c)]
	r.Dist, r.H, r.F = g, h, AddCost(g, h)
}

// Neighbors appends to dst the 4-connected neighbors of c that pass f,
// in the order up, down, left, right, and returns the extended slice.
// Pass dst[:0] to reuse a buffer across calls.
func (s *State) Neighbors(c gridgraph.Coord, f Filter, dst []gridgraph.Coord) []gridgraph.Coord {
	for _, d := range gridgraph.Offsets4 {
		n := c.Add(d)
		if !s.grid.Walkable(n) {
			continue
		}
		if f == ExcludeWallsAndVisited && s.records[s.grid.Index(n)].Visited {
			continue
		}
		dst = append(dst, n)
	}

	return dst
}

// Path follows predecessor links from goal and returns the chain start-first.
// A goal without predecessor yields [goal]; the caller distinguishes a real
// path by checking path[0] against the start cell.
// Complexity: O(path length).
func (s *State) Path(goal gridgraph.Coord) []gridgraph.Coord {
	var path []gridgraph.Coord
	// bounded by the cell count so a corrupted table cannot loop forever
	for at, steps := s.grid.Index(goal), 0; at != NoPrev && steps <= len(s.records); steps++ {
		path = append(path, s.grid.Coordinate(at))
		at = s.records[at].Prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Validate checks the preconditions of a run and claims st for it:
// st and its grid are non-nil, start and goal are in bounds and open,
// and st has not been used since its last Reset.
func Validate(st *State, start, goal gridgraph.Coord) error {
	if st == nil || st.grid == nil {
		return ErrNilState
	}
	for _, c := range [2]gridgraph.Coord{start, goal} {
		if !st.grid.InBounds(c) {
			return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, st.grid.Rows, st.grid.Cols)
		}
		if st.grid.IsWall(c) {
			return fmt.Errorf("%w: %v", ErrWallEndpoint, c)
		}
	}
	if st.claimed {
		return ErrDirtyState
	}
	st.claimed = true

	return nil
}
