package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/bidirectional"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/jps"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for engine operations.
var (
	// ErrUnknownAlgorithm indicates a Kind or name outside the registry.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrNilGrid indicates Run or Compare was called without a grid.
	ErrNilGrid = errors.New("engine: grid is nil")
)

// Kind enumerates the registered search algorithms.
type Kind uint8

const (
	BFS Kind = iota
	DFS
	RecursiveDFS
	Dijkstra
	DijkstraWeighted
	AStar
	Greedy
	Bidirectional
	Jump

	numKinds
)

// registry maps each Kind to its strategy. Index order equals Kind order.
var registry = [numKinds]search.Strategy{
	BFS:              bfs.Strategy,
	DFS:              dfs.Strategy,
	RecursiveDFS:     dfs.RecursiveStrategy,
	Dijkstra:         dijkstra.Strategy,
	DijkstraWeighted: dijkstra.WeightedStrategy,
	AStar:            astar.Strategy,
	Greedy:           astar.GreedyStrategy,
	Bidirectional:    bidirectional.Strategy,
	Jump:             jps.Strategy,
}

// Kinds returns every registered Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind resolves an algorithm name ("bfs", "dijkstraWeighted", "jump", ...).
func ParseKind(name string) (Kind, error) {
	for k, s := range registry {
		if s.Name() == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Valid reports whether k is a registered Kind.
func (k Kind) Valid() bool { return k < numKinds }

// String returns the algorithm name, or "Kind(n)" for unregistered values.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return registry[k].Name()
}

// Strategy returns the search.Strategy behind k, or nil if k is not registered.
func (k Kind) Strategy() search.Strategy {
	if !k.Valid() {
		return nil
	}

	return registry[k]
}

// Weighted reports whether k reads cell weights.
func (k Kind) Weighted() bool { return k == DijkstraWeighted }

// Result is an immutable snapshot of one finished search.
type Result struct {
	Algorithm Kind
	// Visited lists cells in the order the algorithm settled them.
	Visited []gridgraph.Coord
	// Path runs start to goal when Found; otherwise it is [goal].
	Path  []gridgraph.Coord
	Found bool
	// Cost is the hop count, or the sum of entered cell weights for
	// weighted algorithms. search.Unreachable when not Found.
	Cost    int64
	Elapsed time.Duration
}

// Hops returns the number of steps on Path, or -1 when not Found.
func (r *Result) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
