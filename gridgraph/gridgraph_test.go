package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction and InBounds Tests
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.From2D(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_Errors rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		_, err := gridgraph.New(dims[0], dims[1])
		assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid, "New(%d,%d)", dims[0], dims[1])
	}
}

// TestFrom2D_Values checks the wall/weight interpretation of cell values.
func TestFrom2D_Values(t *testing.T) {
	g, err := gridgraph.From2D([][]int{
		{0, 1, 5},
		{gridgraph.CellWall, -7, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.False(t, g.IsWall(gridgraph.Coord{Row: 0, Col: 0}))
	assert.True(t, g.IsWall(gridgraph.Coord{Row: 1, Col: 0}))
	assert.True(t, g.IsWall(gridgraph.Coord{Row: 1, Col: 1}))
	assert.Equal(t, int64(1), g.Weight(gridgraph.Coord{Row: 0, Col: 1}))
	assert.Equal(t, int64(5), g.Weight(gridgraph.Coord{Row: 0, Col: 2}))
	assert.Equal(t, int64(2), g.Weight(gridgraph.Coord{Row: 1, Col: 2}))
	assert.Equal(t, 2, g.Walls())
}

// TestInBounds checks InBounds and Walkable on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(gridgraph.Coord{Row: 1, Col: 1}, true))

	valid := []gridgraph.Coord{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Coord{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if g.Walkable(c) {
			t.Errorf("Walkable(%v)=true; want false", c)
		}
		if !g.IsWall(c) {
			t.Errorf("IsWall(%v)=false; out-of-bounds must count as wall", c)
		}
	}
	assert.False(t, g.Walkable(gridgraph.Coord{Row: 1, Col: 1}))
}

// TestSetWeight verifies weight validation and defaults.
func TestSetWeight(t *testing.T) {
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	c := gridgraph.Coord{Row: 1, Col: 0}

	assert.Equal(t, gridgraph.DefaultWeight, g.Weight(c))
	require.NoError(t, g.SetWeight(c, 7))
	assert.Equal(t, int64(7), g.Weight(c))
	assert.ErrorIs(t, g.SetWeight(c, 0), gridgraph.ErrBadWeight)
	assert.ErrorIs(t, g.SetWeight(gridgraph.Coord{Row: 5, Col: 5}, 2), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetWall(gridgraph.Coord{Row: -1, Col: 0}, true), gridgraph.ErrOutOfBounds)
}

// TestIndexRoundTrip checks Index and Coordinate are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, err := gridgraph.New(3, 4)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		require.True(t, g.InBounds(c))
		require.Equal(t, i, g.Index(c))
	}
	assert.Equal(t, gridgraph.Coord{Row: 2, Col: 1}, g.Coordinate(9))
}

// TestClone ensures the copy does not share wall or weight storage.
func TestClone(t *testing.T) {
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	cp := g.Clone()
	require.NoError(t, cp.SetWall(gridgraph.Coord{Row: 0, Col: 1}, true))
	require.NoError(t, cp.SetWeight(gridgraph.Coord{Row: 1, Col: 1}, 4))

	assert.False(t, g.IsWall(gridgraph.Coord{Row: 0, Col: 1}))
	assert.Equal(t, gridgraph.DefaultWeight, g.Weight(gridgraph.Coord{Row: 1, Col: 1}))
}

//----------------------------------------------------------------------------//
// Layout Tests
//----------------------------------------------------------------------------//

// TestParseLayout reads walls, weights and endpoints, and renders back.
func TestParseLayout(t *testing.T) {
	l, err := gridgraph.ParseLayout(
		"S.#",
		".3G",
	)
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, l.Start)
	assert.Equal(t, gridgraph.Coord{Row: 1, Col: 2}, l.Goal)
	assert.True(t, l.Grid.IsWall(gridgraph.Coord{Row: 0, Col: 2}))
	assert.Equal(t, int64(3), l.Grid.Weight(gridgraph.Coord{Row: 1, Col: 1}))
	assert.Equal(t, "..#\n.3.\n", l.Grid.String())
}

// TestGrid_StringHeavyWeight checks that weights beyond the layout alphabet
// still render as weighted cells.
func TestGrid_StringHeavyWeight(t *testing.T) {
	g, err := gridgraph.New(1, 4)
	require.NoError(t, err)
	require.NoError(t, g.SetWeight(gridgraph.Coord{Row: 0, Col: 1}, 9))
	require.NoError(t, g.SetWeight(gridgraph.Coord{Row: 0, Col: 2}, 12))
	require.NoError(t, g.SetWall(gridgraph.Coord{Row: 0, Col: 3}, true))

	assert.Equal(t, ".99#\n", g.String())
}

// TestParseLayout_Errors covers every malformed-layout sentinel.
func TestParseLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, gridgraph.ErrEmptyGrid},
		{"Ragged", []string{"S..", "G"}, gridgraph.ErrNonRectangular},
		{"BadCell", []string{"S?G"}, gridgraph.ErrBadCell},
		{"NoGoal", []string{"S.."}, gridgraph.ErrMissingEndpoint},
		{"TwoStarts", []string{"S.S", "..G"}, gridgraph.ErrDuplicateEndpoint},
		{"TwoGoals", []string{"SGG"}, gridgraph.ErrDuplicateEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseLayout(tc.rows...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestMustParseLayout_Panics confirms the panic on malformed input.
func TestMustParseLayout_Panics(t *testing.T) {
	assert.Panics(t, func() { gridgraph.MustParseLayout("...") })
}
