package bidirectional_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bidirectional"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun shows both frontiers meeting in the middle of a corridor.
func ExampleRun() {
	l := gridgraph.MustParseLayout("S.....G")
	st := search.NewState(l.Grid)
	order, _ := bidirectional.Run(st, l.Start, l.Goal)

	fmt.Println("settled:", order)
	fmt.Println("path:", st.Path(l.Goal))
	// Output:
	// settled: [(0,0) (0,6) (0,1) (0,5) (0,2) (0,4)]
	// path: [(0,0) (0,1) (0,2) (0,3) (0,4) (0,5) (0,6)]
}
