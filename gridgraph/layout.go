package gridgraph

import (
	"fmt"
	"strings"
)

// Layout cell markers understood by ParseLayout.
const (
	MarkWall  = '#'
	MarkOpen  = '.'
	MarkStart = 'S'
	MarkGoal  = 'G'
)

// ParseLayout builds a Layout from text rows, one string per grid row.
//
//	'#'       wall
//	'.' ' '   open cell
//	'1'..'9'  open cell with that weight
//	'S' 'G'   start and goal (open, default weight)
//
// Exactly one 'S' and one 'G' are required.
func ParseLayout(rows ...string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(rows), w)
	if err != nil {
		return nil, err
	}

	l := &Layout{Grid: g}
	var haveStart, haveGoal bool
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			at := Coord{Row: r, Col: c}
			switch ch := row[c]; {
			case ch == MarkWall:
				g.walls[g.index(r, c)] = true
			case ch == MarkOpen || ch == ' ':
			case ch >= '1' && ch <= '9':
				g.weights[g.index(r, c)] = int64(ch - '0')
			case ch == MarkStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateEndpoint, at)
				}
				l.Start, haveStart = at, true
			case ch == MarkGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at %v", ErrDuplicateEndpoint, at)
				}
				l.Goal, haveGoal = at, true
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, at)
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, ErrMissingEndpoint
	}

	return l, nil
}

// MustParseLayout is ParseLayout that panics on error. Intended for tests
// and package-level fixtures.
func MustParseLayout(rows ...string) *Layout {
	l, err := ParseLayout(rows...)
	if err != nil {
		panic(err)
	}

	return l
}

// String renders the grid with the ParseLayout alphabet, without endpoints.
// Weights above 9 render as '9'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			i := g.index(r, c)
			switch w := g.weights[i]; {
			case g.walls[i]:
				sb.WriteByte(MarkWall)
			case w > 1:
				sb.WriteByte(byte('0' + min(w, 9)))
			default:
				sb.WriteByte(MarkOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
