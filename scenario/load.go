package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// hclFile is the top-level structure of a scenario file.
type hclFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

// hclScenario holds the attributes that fix the grid shape. Everything else
// stays in Remain and is decoded once rows and cols are known.
type hclScenario struct {
	Name   string   `hcl:"name,label"`
	Rows   *int     `hcl:"rows,optional"`
	Cols   *int     `hcl:"cols,optional"`
	Layout []string `hcl:"layout,optional"`
	Remain hcl.Body `hcl:",remain"`
}

type hclScenarioBody struct {
	Start     []int          `hcl:"start,optional"`
	Goal      []int          `hcl:"goal,optional"`
	Algorithm *string        `hcl:"algorithm,optional"`
	Speed     *string        `hcl:"speed,optional"`
	Walls     [][]int        `hcl:"walls,optional"`
	WallLines []*hclWallLine `hcl:"wall_line,block"`
	Weights   []*hclWeight   `hcl:"weight,block"`
}

type hclWallLine struct {
	From []int `hcl:"from"`
	To   []int `hcl:"to"`
}

type hclWeight struct {
	At    []int `hcl:"at"`
	Value int   `hcl:"value"`
}

// LoadFile parses every scenario block of the HCL file at path.
func LoadFile(path string) ([]*Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, diags)
	}

	return decodeFile(f, path)
}

// Parse is LoadFile for in-memory source; filename only labels diagnostics.
func Parse(src []byte, filename string) ([]*Scenario, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", filename, diags)
	}

	return decodeFile(f, filename)
}

// Load returns the scenario called name from the file at path.
// An empty name selects the first scenario in the file.
func Load(path, name string) (*Scenario, error) {
	list, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Find(list, name)
}

// Find returns the scenario called name, or the first one when name is empty.
func Find(list []*Scenario, name string) (*Scenario, error) {
	if len(list) == 0 {
		return nil, ErrNoScenario
	}
	if name == "" {
		return list[0], nil
	}
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
}

func decodeFile(f *hcl.File, filename string) ([]*Scenario, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario file %s: %w", filename, diags)
	}
	if len(parsed.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoScenario, filename)
	}

	out := make([]*Scenario, 0, len(parsed.Scenarios))
	for _, block := range parsed.Scenarios {
		s, err := block.build()
		if err != nil {
			return nil, fmt.Errorf("scenario %q in %s: %w", block.Name, filename, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// build turns one decoded block into a Scenario.
func (b *hclScenario) build() (*Scenario, error) {
	s := &Scenario{Name: b.Name, Algorithm: DefaultAlgorithm, Speed: DefaultSpeed}

	// 1) Grid shape from layout or rows/cols
	var fromLayout *gridgraph.Layout
	if len(b.Layout) > 0 {
		l, err := gridgraph.ParseLayout(b.Layout...)
		if err != nil {
			return nil, err
		}
		if (b.Rows != nil && *b.Rows != l.Grid.Rows) || (b.Cols != nil && *b.Cols != l.Grid.Cols) {
			return nil, fmt.Errorf("%w: layout is %dx%d", ErrDimensionMismatch, l.Grid.Rows, l.Grid.Cols)
		}
		fromLayout, s.Grid = l, l.Grid
	} else {
		rows, cols := DefaultRows, DefaultCols
		if b.Rows != nil {
			rows = *b.Rows
		}
		if b.Cols != nil {
			cols = *b.Cols
		}
		g, err := gridgraph.New(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: %dx%d", ErrNoDimensions, rows, cols)
		}
		s.Grid = g
	}

	// 2) Remaining attributes see the grid size
	var body hclScenarioBody
	if diags := gohcl.DecodeBody(b.Remain, evalContext(s.Grid), &body); diags.HasErrors() {
		return nil, diags
	}

	// 3) Endpoints: explicit, then layout markers, then clamped defaults
	var err error
	switch {
	case body.Start != nil:
		if s.Start, err = s.coord(body.Start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	case fromLayout != nil:
		s.Start = fromLayout.Start
	default:
		s.Start = clamp(DefaultStart, s.Grid)
	}
	switch {
	case body.Goal != nil:
		if s.Goal, err = s.coord(body.Goal); err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
	case fromLayout != nil:
		s.Goal = fromLayout.Goal
	default:
		s.Goal = clamp(DefaultGoal, s.Grid)
	}

	// 4) Walls and weights
	for _, w := range body.Walls {
		c, err := s.coord(w)
		if err != nil {
			return nil, fmt.Errorf("walls: %w", err)
		}
		_ = s.Grid.SetWall(c, true)
	}
	for _, line := range body.WallLines {
		if err := s.wallLine(line); err != nil {
			return nil, fmt.Errorf("wall_line: %w", err)
		}
	}
	for _, w := range body.Weights {
		c, err := s.coord(w.At)
		if err != nil {
			return nil, fmt.Errorf("weight: %w", err)
		}
		if err := s.Grid.SetWeight(c, int64(w.Value)); err != nil {
			return nil, err
		}
	}
	if s.Grid.IsWall(s.Start) || s.Grid.IsWall(s.Goal) {
		return nil, fmt.Errorf("%w: start %v, goal %v", ErrEndpointWall, s.Start, s.Goal)
	}
	if s.Start == s.Goal {
		return nil, fmt.Errorf("%w: %v", ErrEndpointClash, s.Start)
	}

	// 5) Run settings
	if body.Algorithm != nil {
		if s.Algorithm, err = engine.ParseKind(*body.Algorithm); err != nil {
			return nil, err
		}
	}
	if body.Speed != nil {
		if s.Speed, err = ParseSpeed(*body.Speed); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// coord validates a [row, col] pair against the grid.
func (s *Scenario) coord(v []int) (gridgraph.Coord, error) {
	if len(v) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("%w: got %v", ErrBadCoord, v)
	}
	c := gridgraph.Coord{Row: v[0], Col: v[1]}
	if !s.Grid.InBounds(c) {
		return gridgraph.Coord{}, fmt.Errorf("%w: %v outside %dx%d", ErrBadCoord, c, s.Grid.Rows, s.Grid.Cols)
	}

	return c, nil
}

// wallLine walls every cell of a horizontal or vertical segment, ends included.
func (s *Scenario) wallLine(l *hclWallLine) error {
	from, err := s.coord(l.From)
	if err != nil {
		return err
	}
	to, err := s.coord(l.To)
	if err != nil {
		return err
	}
	if from.Row != to.Row && from.Col != to.Col {
		return fmt.Errorf("%w: %v to %v is not straight", ErrBadCoord, from, to)
	}
	step := gridgraph.Coord{Row: sign(to.Row - from.Row), Col: sign(to.Col - from.Col)}
	for c := from; ; c = c.Add(step) {
		_ = s.Grid.SetWall(c, true)
		if c == to {
			return nil
		}
	}
}

// evalContext exposes the grid size to scenario expressions.
func evalContext(g *gridgraph.Grid) *hcl.EvalContext {
	return &hcl.EvalContext{Variables: map[string]cty.Value{
		"rows":     cty.NumberIntVal(int64(g.Rows)),
		"cols":     cty.NumberIntVal(int64(g.Cols)),
		"last_row": cty.NumberIntVal(int64(g.Rows - 1)),
		"last_col": cty.NumberIntVal(int64(g.Cols - 1)),
	}}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}
