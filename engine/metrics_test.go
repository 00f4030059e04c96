package engine

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	e := New(WithMetrics(m))
	ctx := context.Background()

	open := gridgraph.MustParseLayout("S..G")
	closed := gridgraph.MustParseLayout("S#G")

	_, err := e.Run(ctx, open.Grid, BFS, open.Start, open.Goal)
	require.NoError(t, err)
	_, err = e.Run(ctx, open.Grid, BFS, open.Start, open.Goal)
	require.NoError(t, err)
	_, err = e.Run(ctx, closed.Grid, AStar, closed.Start, closed.Goal)
	require.NoError(t, err)
	_, err = e.Run(ctx, closed.Grid, Jump, closed.Start, gridgraph.Coord{Row: 0, Col: 1})
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("bfs", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("astar", OutcomeUnreachable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("jump", OutcomeError)))

	// searches + three histogram families
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 1, testutil.CollectAndCount(m.pathLength, "gridpath_search_path_cells"))
	assert.Equal(t, 2, testutil.CollectAndCount(m.visited, "gridpath_search_visited_cells"))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(&Result{Algorithm: BFS})
		m.observeError(BFS)
	})
}
