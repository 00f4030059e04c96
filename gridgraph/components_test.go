// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 3×4 grid.
//
// Grid (# = wall, . = open):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(R·C·4) time, O(R·C) memory.
func TestConnectedComponents_Simple(t *testing.T) {
	g, err := From2D([][]int{
		{-1, 0, 0, -1},
		{0, 0, -1, -1},
		{-1, -1, 0, 0},
	})
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals ensures corner-touching cells stay apart.
//
//	. #
//	# .
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g, err := From2D([][]int{
		{0, -1},
		{-1, 0},
	})
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	if comps := g.ConnectedComponents(); len(comps) != 2 {
		t.Errorf("got %d components; want 2", len(comps))
	}
	if g.Connected(Coord{0, 0}, Coord{1, 1}) {
		t.Error("Connected across a diagonal; want false")
	}
}

// TestConnectedComponents_EmptyAndAllWall tests edge cases:
//   - all-wall grid → zero components
//   - single open cell → one component of size 1
func TestConnectedComponents_EmptyAndAllWall(t *testing.T) {
	g1, _ := From2D([][]int{
		{-1, -1},
		{-1, -1},
	})
	if comps := g1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-wall: got %d components; want 0", len(comps))
	}

	g2, _ := From2D([][]int{{-1, 0}})
	comps2 := g2.ConnectedComponents()
	if len(comps2) != 1 {
		t.Fatalf("single open: got %d components; want 1", len(comps2))
	}
	if len(comps2[0]) != 1 || comps2[0][0] != g2.index(0, 1) {
		t.Errorf("single open: component = %v; want [%d]", comps2[0], g2.index(0, 1))
	}
}

// TestConnected_WallEndpoints returns false when either cell is a wall.
func TestConnected_WallEndpoints(t *testing.T) {
	g, _ := From2D([][]int{{0, 0, -1}})
	if !g.Connected(Coord{0, 0}, Coord{0, 1}) {
		t.Error("adjacent open cells: want connected")
	}
	if g.Connected(Coord{0, 0}, Coord{0, 2}) {
		t.Error("wall endpoint: want not connected")
	}
}
