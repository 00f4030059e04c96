// Package app wires a parsed Config to the gridpath packages: it loads or
// generates the grid, runs the searches, and reports through text, PNG,
// terminal replay and Prometheus.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/replay"
	"github.com/katalvlaran/gridpath/scenario"
)

// App runs one gridpath invocation.
type App struct {
	outW     io.Writer
	config   *Config
	logger   *slog.Logger
	registry *prometheus.Registry
	engine   *engine.Engine
	metrics  *metricsServer
}

// NewApp builds the logger, metrics registry and engine for cfg.
// Reports go to outW, logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	reg := prometheus.NewRegistry()

	return &App{
		outW:     outW,
		config:   cfg,
		logger:   logger,
		registry: reg,
		engine: engine.New(
			engine.WithLogger(logger),
			engine.WithMetrics(engine.NewMetrics(reg)),
		),
	}
}

// Run executes the configured searches and writes every requested report.
func (app *App) Run(ctx context.Context) error {
	if app.config.MetricsAddr != "" {
		app.metrics = startMetricsServer(app.config.MetricsAddr, app.registry, app.logger)
		defer app.metrics.close(ctx)
	}

	sc, err := app.loadScenario()
	if err != nil {
		return err
	}
	app.logger.Info("Scenario loaded.",
		"name", sc.Name, "rows", sc.Grid.Rows, "cols", sc.Grid.Cols,
		"walls", sc.Grid.Walls(), "start", sc.Start.String(), "goal", sc.Goal.String())

	if app.config.Compare {
		return app.compare(ctx, sc)
	}

	res, err := app.engine.Run(ctx, sc.Grid, sc.Algorithm, sc.Start, sc.Goal)
	if err != nil {
		return err
	}
	scene := render.Scene{Grid: sc.Grid, Start: sc.Start, Goal: sc.Goal, Result: res}

	fmt.Fprint(app.outW, render.ASCII(scene))
	app.summarize(sc, res)

	if app.config.PNG != "" {
		if err := render.SavePNG(app.config.PNG, scene); err != nil {
			return fmt.Errorf("failed to write %s: %w", app.config.PNG, err)
		}
		app.logger.Info("PNG written.", "path", app.config.PNG)
	}
	if app.config.Replay {
		return replay.Show(ctx, scene, replay.WithSpeed(sc.Speed))
	}

	return nil
}

// loadScenario picks the grid source and applies flag overrides.
func (app *App) loadScenario() (*scenario.Scenario, error) {
	var sc *scenario.Scenario
	switch {
	case app.config.ScenarioFile != "":
		var err error
		if sc, err = scenario.Load(app.config.ScenarioFile, app.config.Scenario); err != nil {
			return nil, err
		}
	case app.config.Maze:
		m, err := maze.Generate(maze.Config{
			Rows:     app.config.Rows,
			Cols:     app.config.Cols,
			Braiding: app.config.Braiding,
			Seed:     app.config.Seed,
		})
		if err != nil {
			return nil, err
		}
		sc = scenario.Default()
		sc.Name, sc.Grid, sc.Start, sc.Goal = "maze", m.Grid, m.Start, m.Goal
	default:
		sc = scenario.Default()
	}

	if app.config.Algorithm != nil {
		sc.Algorithm = *app.config.Algorithm
	}
	if app.config.Speed != nil {
		sc.Speed = *app.config.Speed
	}

	return sc, nil
}

// summarize prints the result line and, for an unreachable goal, how many
// walls separate start and goal.
func (app *App) summarize(sc *scenario.Scenario, res *engine.Result) {
	if res.Found {
		fmt.Fprintf(app.outW, "%s: path %d hops, cost %d, visited %d cells in %s\n",
			res.Algorithm, res.Hops(), res.Cost, len(res.Visited), res.Elapsed)
		return
	}

	fmt.Fprintf(app.outW, "%s: goal unreachable, visited %d cells in %s\n",
		res.Algorithm, len(res.Visited), res.Elapsed)
	_, walls, err := sc.Grid.MinBreach(sc.Start, sc.Goal)
	if err != nil {
		app.logger.Error("Breach analysis failed.", "error", err)
		return
	}
	fmt.Fprintf(app.outW, "removing %d wall(s) would connect start and goal\n", walls)
}

// compare runs every algorithm and prints one row per algorithm.
func (app *App) compare(ctx context.Context, sc *scenario.Scenario) error {
	results, err := app.engine.Compare(ctx, sc.Grid, engine.Kinds(), sc.Start, sc.Goal)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.outW, "%-17s %-6s %6s %6s %8s %12s\n", "ALGORITHM", "FOUND", "HOPS", "COST", "VISITED", "ELAPSED")
	for _, r := range results {
		hops, cost := "-", "-"
		if r.Found {
			hops, cost = fmt.Sprint(r.Hops()), fmt.Sprint(r.Cost)
		}
		fmt.Fprintf(app.outW, "%-17s %-6t %6s %6s %8d %12s\n",
			r.Algorithm, r.Found, hops, cost, len(r.Visited), r.Elapsed)
	}

	return nil
}
