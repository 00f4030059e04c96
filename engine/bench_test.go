package engine_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/internal/oracle"
)

// BenchmarkCompare runs every algorithm on a 64×64 random grid.
func BenchmarkCompare(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := oracle.RandomGrid(rng, 64, 64, 0.25, at(0, 0), at(63, 63))
	e := engine.New()
	kinds := engine.Kinds()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Compare(ctx, g, kinds, at(0, 0), at(63, 63)); err != nil {
			b.Fatal(err)
		}
	}
}
