package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun shows A* routing around a wall and the costs it leaves behind.
//
//	S . # .
//	. . # .
//	. . . G
func ExampleRun() {
	l := gridgraph.MustParseLayout(
		"S.#.",
		"..#.",
		"...G",
	)
	st := search.NewState(l.Grid)
	_, _ = astar.Run(st, l.Start, l.Goal)

	goal := st.At(l.Goal)
	fmt.Printf("g=%d h=%d f=%d\n", goal.Dist, goal.H, goal.F)
	fmt.Println(len(st.Path(l.Goal))-1, "hops")
	// Output:
	// g=5 h=0 f=5
	// 5 hops
}
