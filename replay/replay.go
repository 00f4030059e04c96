package replay

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
)

// ErrNoResult indicates Play was given a scene without a search result.
var ErrNoResult = errors.New("replay: scene has no result to replay")

// Glyphs drawn for each kind of cell.
const (
	GlyphOpen    = ' '
	GlyphWall    = '█'
	GlyphVisited = '·'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

// Options configures a Player.
type Options struct {
	// Step is the pause after each visited cell, PathStep after each path cell.
	Step, PathStep time.Duration
}

// Option mutates Options.
type Option func(*Options)

// WithSpeed sets Step from a scenario speed and PathStep to scenario.PathDelay.
func WithSpeed(s scenario.Speed) Option {
	return func(o *Options) {
		o.Step = s.Delay()
		o.PathStep = scenario.PathDelay
	}
}

// WithDelays sets both pauses directly; zero disables waiting.
func WithDelays(step, pathStep time.Duration) Option {
	return func(o *Options) { o.Step, o.PathStep = step, pathStep }
}

// DefaultOptions replays at medium speed.
func DefaultOptions() Options {
	var o Options
	WithSpeed(scenario.DefaultSpeed)(&o)

	return o
}

// Player animates one search result on a tcell screen.
type Player struct {
	screen tcell.Screen
	opts   Options
}

// NewPlayer binds a Player to an initialized screen.
func NewPlayer(screen tcell.Screen, opts ...Option) *Player {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Player{screen: screen, opts: cfg}
}

var (
	styleOpen    = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleWeight  = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleVisited = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Play draws the grid, then reveals visited cells one by one and, when the
// goal was found, the path. Start and goal keep their glyphs throughout.
// Returns ctx.Err() if ctx ends mid-replay.
func (p *Player) Play(ctx context.Context, s render.Scene) error {
	if s.Result == nil {
		return ErrNoResult
	}
	p.drawGrid(s)
	p.screen.Show()

	endpoint := func(c gridgraph.Coord) bool { return c == s.Start || c == s.Goal }

	for _, c := range s.Result.Visited {
		if endpoint(c) {
			continue
		}
		p.screen.SetContent(c.Col, c.Row, GlyphVisited, nil, styleVisited)
		p.screen.Show()
		if err := wait(ctx, p.opts.Step); err != nil {
			return err
		}
	}
	if !s.Result.Found {
		return nil
	}
	for _, c := range s.Result.Path {
		if endpoint(c) {
			continue
		}
		p.screen.SetContent(c.Col, c.Row, GlyphPath, nil, stylePath)
		p.screen.Show()
		if err := wait(ctx, p.opts.PathStep); err != nil {
			return err
		}
	}

	return nil
}

func (p *Player) drawGrid(s render.Scene) {
	p.screen.Clear()
	g := s.Grid
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		glyph, style := rune(GlyphOpen), styleOpen
		switch w := g.Weight(c); {
		case g.IsWall(c):
			glyph, style = GlyphWall, styleWall
		case w > gridgraph.DefaultWeight:
			glyph, style = rune('0'+min(w, 9)), styleWeight
		}
		p.screen.SetContent(c.Col, c.Row, glyph, nil, style)
	}
	p.screen.SetContent(s.Start.Col, s.Start.Row, GlyphStart, nil, styleStart)
	p.screen.SetContent(s.Goal.Col, s.Goal.Row, GlyphGoal, nil, styleGoal)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Show opens the terminal, plays the scene and keeps it on screen until
// Esc, q or Ctrl-C is pressed or ctx ends.
func Show(ctx context.Context, s render.Scene, opts ...Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					return
				}
			}
		}
	}()

	if err := NewPlayer(screen, opts...).Play(ctx, s); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	<-ctx.Done()

	return nil
}
