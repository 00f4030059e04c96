package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrBadCellSize indicates a cell size below one pixel.
var ErrBadCellSize = errors.New("render: cell size must be positive")

// Text markers used by ASCII besides the gridgraph layout alphabet.
const (
	MarkPath    = '*'
	MarkVisited = 'o'
)

// Scene is what gets drawn: a grid, its endpoints, and optionally a search
// result whose visited cells and path are overlaid.
type Scene struct {
	Grid        *gridgraph.Grid
	Start, Goal gridgraph.Coord
	Result      *engine.Result
}

// cellKind is the topmost layer covering one cell.
type cellKind uint8

const (
	kindOpen cellKind = iota
	kindWeighted
	kindWall
	kindVisited
	kindPath
	kindStart
	kindGoal
)

// classify resolves every cell to its topmost layer:
// endpoints over path over visited over the grid itself.
func (s Scene) classify() []cellKind {
	g := s.Grid
	out := make([]cellKind, g.Len())
	for i := range out {
		c := g.Coordinate(i)
		switch {
		case g.IsWall(c):
			out[i] = kindWall
		case g.Weight(c) > gridgraph.DefaultWeight:
			out[i] = kindWeighted
		}
	}
	if s.Result != nil {
		for _, c := range s.Result.Visited {
			out[g.Index(c)] = kindVisited
		}
		if s.Result.Found {
			for _, c := range s.Result.Path {
				out[g.Index(c)] = kindPath
			}
		}
	}
	out[g.Index(s.Start)] = kindStart
	out[g.Index(s.Goal)] = kindGoal

	return out
}

// ASCII renders the scene one line per row: '#' wall, '.' open, '1'..'9'
// weight, 'o' visited, '*' path, 'S' and 'G' endpoints.
func ASCII(s Scene) string {
	kinds := s.classify()
	var sb strings.Builder
	sb.Grow(s.Grid.Rows * (s.Grid.Cols + 1))
	for i, k := range kinds {
		switch k {
		case kindWall:
			sb.WriteByte(gridgraph.MarkWall)
		case kindWeighted:
			w := s.Grid.Weight(s.Grid.Coordinate(i))
			if w > 9 {
				w = 9
			}
			sb.WriteByte(byte('0' + w))
		case kindVisited:
			sb.WriteByte(MarkVisited)
		case kindPath:
			sb.WriteByte(MarkPath)
		case kindStart:
			sb.WriteByte(gridgraph.MarkStart)
		case kindGoal:
			sb.WriteByte(gridgraph.MarkGoal)
		default:
			sb.WriteByte(gridgraph.MarkOpen)
		}
		if (i+1)%s.Grid.Cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Palette assigns a color to each layer of the PNG rendering.
type Palette struct {
	Open, Weighted, Wall, Visited, Path, Start, Goal color.Color
}

// DefaultPalette mirrors the browser visualizer's scheme.
func DefaultPalette() Palette {
	return Palette{
		Open:     color.White,
		Weighted: color.RGBA{R: 222, G: 184, B: 135, A: 255},
		Wall:     color.RGBA{R: 12, G: 53, B: 71, A: 255},
		Visited:  color.RGBA{R: 64, G: 206, B: 227, A: 255},
		Path:     color.RGBA{R: 255, G: 254, B: 106, A: 255},
		Start:    color.RGBA{R: 0, G: 170, B: 0, A: 255},
		Goal:     color.RGBA{R: 220, G: 20, B: 60, A: 255},
	}
}

func (p Palette) of(k cellKind) color.Color {
	switch k {
	case kindWeighted:
		return p.Weighted
	case kindWall:
		return p.Wall
	case kindVisited:
		return p.Visited
	case kindPath:
		return p.Path
	case kindStart:
		return p.Start
	case kindGoal:
		return p.Goal
	}

	return p.Open
}

// Options configures Image.
type Options struct {
	CellSize int
	Palette  Palette
}

// Option mutates Options.
type Option func(*Options)

// WithCellSize sets the side of one cell in pixels.
func WithCellSize(px int) Option {
	return func(o *Options) { o.CellSize = px }
}

// WithPalette replaces the colors.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.Palette = p }
}

// DefaultOptions draws 16-pixel cells with DefaultPalette.
func DefaultOptions() Options {
	return Options{CellSize: 16, Palette: DefaultPalette()}
}

// Image draws the scene: square cells, endpoints as discs on an open cell.
func Image(s Scene, opts ...Option) (image.Image, error) {
	dc, err := draw(s, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// WritePNG encodes the rendered scene as PNG to w.
func WritePNG(w io.Writer, s Scene, opts ...Option) error {
	dc, err := draw(s, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes the rendered scene to a PNG file at path.
func SavePNG(path string, s Scene, opts ...Option) error {
	dc, err := draw(s, opts)
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}

func draw(s Scene, opts []Option) (*gg.Context, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CellSize < 1 {
		return nil, ErrBadCellSize
	}

	size := float64(cfg.CellSize)
	dc := gg.NewContext(s.Grid.Cols*cfg.CellSize, s.Grid.Rows*cfg.CellSize)
	dc.SetColor(cfg.Palette.Open)
	dc.Clear()

	for i, k := range s.classify() {
		c := s.Grid.Coordinate(i)
		x, y := float64(c.Col)*size, float64(c.Row)*size
		switch k {
		case kindOpen:
			continue
		case kindStart, kindGoal:
			dc.SetColor(cfg.Palette.of(k))
			dc.DrawCircle(x+size/2, y+size/2, size/2)
		default:
			dc.SetColor(cfg.Palette.of(k))
			dc.DrawRectangle(x, y, size, size)
		}
		dc.Fill()
	}

	return dc, nil
}
