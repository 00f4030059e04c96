// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to identify contiguous
// open regions of a grid.
// Scenario:
//
//   - Grid values: -1 = wall, 0 = open
//   - 4-directional adjacency (up, down, left, right)
//   - Expect two regions separated by the wall diagonal.
//
// Complexity: O(R·C·4), Memory: O(R·C)
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.From2D([][]int{
		{-1, 0, 0, -1, 0},
		{0, 0, -1, 0, 0},
		{0, -1, 0, 0, -1},
	})

	comps := g.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", g.Coordinate(idx))
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,1) (1,1) (0,2) (1,0) (2,0)
	// component 1: (0,4) (1,4) (1,3) (2,3) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: MinBreach
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_MinBreach demonstrates computing the minimal number of walls
// to clear so that two separated cells become connected.
// Scenario:
//
//   - Same grid as above.
//   - Connect (1,0) in region 0 to (1,4) in region 1.
//
// Expected: one wall, for example (1,2).
func ExampleGrid_MinBreach() {
	g, _ := gridgraph.From2D([][]int{
		{-1, 0, 0, -1, 0},
		{0, 0, -1, 0, 0},
		{0, -1, 0, 0, -1},
	})
	src := gridgraph.Coord{Row: 1, Col: 0}
	dst := gridgraph.Coord{Row: 1, Col: 4}

	fmt.Println("connected:", g.Connected(src, dst))
	_, walls, _ := g.MinBreach(src, dst)
	fmt.Println("walls to clear:", walls)

	// Output:
	// connected: false
	// walls to clear: 1
}

// ExampleParseLayout shows the text alphabet round trip.
func ExampleParseLayout() {
	l, _ := gridgraph.ParseLayout(
		"S..#",
		".#2.",
		"...G",
	)
	fmt.Println(l.Start, l.Goal)
	fmt.Print(l.Grid)

	// Output:
	// (0,0) (2,3)
	// ...#
	// .#2.
	// ....
}
