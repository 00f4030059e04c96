package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/oracle"
	"github.com/katalvlaran/gridpath/search"
)

// BenchmarkDFS measures both variants on a 200×200 grid with 25% walls.
// The recursive variant's depth is bounded by the number of open cells.
func BenchmarkDFS(b *testing.B) {
	const M = 200
	goal := gridgraph.Coord{Row: M - 1, Col: M - 1}
	g := oracle.RandomGrid(rand.New(rand.NewSource(42)), M, M, 0.25, gridgraph.Coord{}, goal)

	for _, v := range []struct {
		name string
		run  search.Func
	}{
		{"Iterative", dfs.Run},
		{"Recursive", dfs.RunRecursive},
	} {
		b.Run(v.name, func(b *testing.B) {
			st := search.NewState(g)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				st.Reset()
				_, _ = v.run(st, gridgraph.Coord{}, goal)
			}
		})
	}
}
