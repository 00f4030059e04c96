package search_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func at(r, c int) gridgraph.Coord { return gridgraph.Coord{Row: r, Col: c} }

// TestNewState_Reset verifies every record starts unreachable and unlinked.
func TestNewState_Reset(t *testing.T) {
	g, err := gridgraph.New(2, 3)
	require.NoError(t, err)
	st := search.NewState(g)

	for i := 0; i < g.Len(); i++ {
		rec := st.At(g.Coordinate(i))
		assert.False(t, rec.Visited)
		assert.Equal(t, search.Unreachable, rec.Dist)
		assert.Equal(t, search.Unreachable, rec.F)
		assert.Equal(t, int64(0), rec.H)
		assert.Equal(t, search.NoPrev, rec.Prev)
	}

	st.MarkVisited(at(1, 1))
	st.SetPrev(at(1, 1), at(0, 1))
	st.SetCost(at(1, 1), 3, 4)
	rec := st.At(at(1, 1))
	assert.True(t, rec.Visited)
	assert.Equal(t, int64(7), rec.F)

	st.Reset()
	assert.False(t, st.Visited(at(1, 1)))
	_, ok := st.Prev(at(1, 1))
	assert.False(t, ok)
}

// TestValidate covers every precondition sentinel and the claim/reset cycle.
func TestValidate(t *testing.T) {
	l := gridgraph.MustParseLayout(
		"S.#",
		"..G",
	)
	st := search.NewState(l.Grid)

	assert.ErrorIs(t, search.Validate(nil, l.Start, l.Goal), search.ErrNilState)
	assert.ErrorIs(t, search.Validate(search.NewState(nil), l.Start, l.Goal), search.ErrNilState)
	assert.ErrorIs(t, search.Validate(st, at(-1, 0), l.Goal), search.ErrOutOfBounds)
	assert.ErrorIs(t, search.Validate(st, l.Start, at(2, 0)), search.ErrOutOfBounds)
	assert.ErrorIs(t, search.Validate(st, l.Start, at(0, 2)), search.ErrWallEndpoint)
	assert.False(t, st.Claimed(), "failed validation must not claim the state")

	require.NoError(t, search.Validate(st, l.Start, l.Goal))
	assert.True(t, st.Claimed())
	assert.ErrorIs(t, search.Validate(st, l.Start, l.Goal), search.ErrDirtyState)

	st.Reset()
	assert.NoError(t, search.Validate(st, l.Start, l.Goal))
}

// TestNeighbors checks order and both filters.
func TestNeighbors(t *testing.T) {
	l := gridgraph.MustParseLayout(
		"S#.",
		"...",
		".#G",
	)
	st := search.NewState(l.Grid)

	// center: up is wall, down is wall, left and right open
	assert.Equal(t, []gridgraph.Coord{at(1, 0), at(1, 2)},
		st.Neighbors(at(1, 1), search.ExcludeWalls, nil))

	// corner: only down and right exist in bounds; right is a wall
	assert.Equal(t, []gridgraph.Coord{at(1, 0)},
		st.Neighbors(at(0, 0), search.ExcludeWalls, nil))

	// full order on the right column: up, down, left
	assert.Equal(t, []gridgraph.Coord{at(0, 2), at(2, 2), at(1, 1)},
		st.Neighbors(at(1, 2), search.ExcludeWalls, nil))

	st.MarkVisited(at(0, 2))
	buf := make([]gridgraph.Coord, 0, 4)
	assert.Equal(t, []gridgraph.Coord{at(2, 2), at(1, 1)},
		st.Neighbors(at(1, 2), search.ExcludeWallsAndVisited, buf[:0]))
	assert.Len(t, st.Neighbors(at(1, 2), search.ExcludeWalls, buf[:0]), 3)
}

// TestPath reconstructs a chain and the singleton no-path result.
func TestPath(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	st := search.NewState(g)

	st.SetPrev(at(0, 1), at(0, 0))
	st.SetPrev(at(1, 1), at(0, 1))
	st.SetPrev(at(2, 1), at(1, 1))

	assert.Equal(t, []gridgraph.Coord{at(0, 0), at(0, 1), at(1, 1), at(2, 1)}, st.Path(at(2, 1)))
	assert.Equal(t, []gridgraph.Coord{at(2, 2)}, st.Path(at(2, 2)))

	// a predecessor cycle is cut off instead of looping forever
	st.SetPrev(at(0, 0), at(2, 1))
	assert.LessOrEqual(t, len(st.Path(at(2, 1))), g.Len()+1)
}

// TestManhattanAndAddCost checks the heuristic and saturating addition.
func TestManhattanAndAddCost(t *testing.T) {
	assert.Equal(t, int64(8), search.Manhattan(at(0, 0), at(4, 4)))
	assert.Equal(t, int64(5), search.Manhattan(at(3, 1), at(0, 3)))
	assert.Equal(t, int64(0), search.Manhattan(at(2, 2), at(2, 2)))

	assert.Equal(t, int64(7), search.AddCost(3, 4))
	assert.Equal(t, search.Unreachable, search.AddCost(search.Unreachable, 1))
	assert.Equal(t, search.Unreachable, search.AddCost(math.MaxInt64-2, 5))
	assert.Equal(t, search.Unreachable, search.AddCost(search.Unreachable, 0))
}

// TestNewStrategy checks the adapter forwards name and call.
func TestNewStrategy(t *testing.T) {
	called := false
	s := search.NewStrategy("noop", func(st *search.State, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
		called = true
		return []gridgraph.Coord{start}, nil
	})
	assert.Equal(t, "noop", s.Name())
	order, err := s.Run(nil, at(0, 0), at(0, 0))
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []gridgraph.Coord{at(0, 0)}, order)
}

// TestStates_SharedGrid runs independent States over one grid in parallel.
func TestStates_SharedGrid(t *testing.T) {
	g, err := gridgraph.New(20, 20)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			st := search.NewState(g)
			if err := search.Validate(st, at(row, 0), at(row, 19)); err != nil {
				t.Error(err)
				return
			}
			for c := 1; c < 20; c++ {
				st.SetPrev(at(row, c), at(row, c-1))
			}
			if got := len(st.Path(at(row, 19))); got != 20 {
				t.Errorf("row %d: path length %d; want 20", row, got)
			}
		}(i)
	}
	wg.Wait()
}

// TestOpenSet checks priority order, offer-order ties and in-place re-ranking.
func TestOpenSet(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	o := search.NewOpenSet(g)

	o.Offer(at(0, 0), 5)
	o.Offer(at(0, 1), 3)
	o.Offer(at(0, 2), 3)
	o.Offer(at(1, 0), 4)
	assert.Equal(t, 4, o.Len())
	assert.True(t, o.Contains(at(1, 0)))

	// re-rank an open cell; no duplicate appears
	o.Offer(at(0, 0), 1)
	assert.Equal(t, 4, o.Len())

	var got []gridgraph.Coord
	for o.Len() > 0 {
		got = append(got, o.Pop())
	}
	assert.Equal(t, []gridgraph.Coord{at(0, 0), at(0, 1), at(0, 2), at(1, 0)}, got)
	assert.False(t, o.Contains(at(0, 0)))
}

// TestOpenSet_ImprovedCellQueuesBehindEarlierTies checks that a cell whose
// priority drops to an existing value pops after cells that held that value
// in an earlier round, regardless of when it was first opened.
func TestOpenSet_ImprovedCellQueuesBehindEarlierTies(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	o := search.NewOpenSet(g)

	o.Offer(at(0, 0), 0)
	require.Equal(t, at(0, 0), o.Pop())

	o.Offer(at(0, 1), 9)
	o.Offer(at(0, 2), 5)
	require.Equal(t, at(0, 2), o.Pop())

	o.Offer(at(1, 0), 7)
	o.Offer(at(1, 1), 6)
	require.Equal(t, at(1, 1), o.Pop())

	// (0,1) improves to 7; (1,0) is offered again at its current priority
	o.Offer(at(0, 1), 7)
	o.Offer(at(1, 0), 7)
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, at(1, 0), o.Pop())
	assert.Equal(t, at(0, 1), o.Pop())
	assert.Equal(t, 0, o.Len())
}

// TestOpenSet_SameRoundImprovementsKeepPreviousOrder checks that cells
// improved to the same priority in one round keep their previous relative
// order, and that cells opened in that round follow them.
func TestOpenSet_SameRoundImprovementsKeepPreviousOrder(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	o := search.NewOpenSet(g)

	o.Offer(at(0, 0), 0)
	require.Equal(t, at(0, 0), o.Pop())

	o.Offer(at(2, 2), 8)
	o.Offer(at(0, 1), 9)
	require.Equal(t, at(2, 2), o.Pop())

	o.Offer(at(1, 1), 9)
	o.Offer(at(0, 2), 1)
	require.Equal(t, at(0, 2), o.Pop())

	// (1,1) ranked after (0,1) at 9; both drop to 4 alongside a new (2,0)
	o.Offer(at(2, 0), 4)
	o.Offer(at(1, 1), 4)
	o.Offer(at(0, 1), 4)

	var got []gridgraph.Coord
	for o.Len() > 0 {
		got = append(got, o.Pop())
	}
	assert.Equal(t, []gridgraph.Coord{at(0, 1), at(1, 1), at(2, 0)}, got)
}
