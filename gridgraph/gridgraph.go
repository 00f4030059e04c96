package gridgraph

import "fmt"

// New constructs an open rows×cols grid with default weights.
// Returns ErrEmptyGrid if either dimension is below 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		Rows:    rows,
		Cols:    cols,
		walls:   make([]bool, rows*cols),
		weights: make([]int64, rows*cols),
	}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice.
// A negative value marks a wall, 0 and 1 an open cell of default weight,
// and any larger value an open cell with that weight.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := values[r][c]
			i := g.index(r, c)
			switch {
			case v < 0:
				g.walls[i] = true
			case v > 1:
				g.weights[i] = int64(v)
			}
		}
	}

	return g, nil
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int {
	return g.Rows * g.Cols
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// IsWall reports whether c is a wall. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.walls[g.index(c.Row, c.Col)]
}

// Walkable reports whether c is in bounds and not a wall.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && !g.walls[g.index(c.Row, c.Col)]
}

// SetWall marks or clears a wall at c.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.walls[g.index(c.Row, c.Col)] = wall

	return nil
}

// Weight returns the traversal cost of entering c (DefaultWeight unless set).
func (g *Grid) Weight(c Coord) int64 {
	if !g.InBounds(c) {
		return DefaultWeight
	}
	if w := g.weights[g.index(c.Row, c.Col)]; w > 0 {
		return w
	}

	return DefaultWeight
}

// SetWeight assigns the traversal cost of entering c.
// Returns ErrBadWeight for w < 1 and ErrOutOfBounds for an invalid c.
func (g *Grid) SetWeight(c Coord, w int64) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if w < 1 {
		return fmt.Errorf("%w: %d at %v", ErrBadWeight, w, c)
	}
	g.weights[g.index(c.Row, c.Col)] = w

	return nil
}

// Walls returns the number of wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, w := range g.walls {
		if w {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		Rows:    g.Rows,
		Cols:    g.Cols,
		walls:   make([]bool, len(g.walls)),
		weights: make([]int64, len(g.weights)),
	}
	copy(cp.walls, g.walls)
	copy(cp.weights, g.weights)

	return cp
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return g.index(c.Row, c.Col)
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

func (g *Grid) index(r, c int) int {
	return r*g.Cols + c
}
