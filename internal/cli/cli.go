// Package cli parses gridpath command-line flags into an app.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/internal/app"
	"github.com/katalvlaran/gridpath/scenario"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help was requested), or an *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gridpath - grid pathfinding playground.

Usage:
  gridpath [options]

Without -scenario-file or -maze the stock 25x40 open grid is searched.

Algorithms:
  `+strings.Join(kindNames(), ", ")+`

Options:
`)
		fs.PrintDefaults()
	}

	cfg := app.Config{}
	fs.StringVar(&cfg.ScenarioFile, "scenario-file", "", "Path to an HCL scenario file.")
	fs.StringVar(&cfg.Scenario, "scenario", "", "Scenario name inside the file (default: first).")
	algorithm := fs.String("algorithm", "", "Algorithm to run (default: the scenario's).")
	fs.BoolVar(&cfg.Compare, "compare", false, "Run every algorithm and print a comparison table.")
	fs.BoolVar(&cfg.Maze, "maze", false, "Search a generated maze instead of a scenario.")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Maze seed; 0 picks one from the clock.")
	fs.IntVar(&cfg.Rows, "rows", 25, "Maze rows.")
	fs.IntVar(&cfg.Cols, "cols", 41, "Maze columns.")
	fs.Float64Var(&cfg.Braiding, "braiding", 0.3, "Maze braiding, 0 (perfect) to 1.")
	fs.StringVar(&cfg.PNG, "png", "", "Write the result as a PNG image to this path.")
	fs.BoolVar(&cfg.Replay, "replay", false, "Animate the search in the terminal.")
	speed := fs.String("speed", "", "Replay speed: fast, medium or slow (default: the scenario's).")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Logging level: debug, info, warn, error.")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %v", fs.Args())
	}

	if *algorithm != "" {
		k, err := engine.ParseKind(*algorithm)
		if err != nil {
			return nil, false, usageError("invalid algorithm %q: must be one of %s", *algorithm, strings.Join(kindNames(), ", "))
		}
		cfg.Algorithm = &k
	}
	if *speed != "" {
		s, err := scenario.ParseSpeed(*speed)
		if err != nil {
			return nil, false, usageError("invalid speed: %v", err)
		}
		cfg.Speed = &s
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}

func kindNames() []string {
	var names []string
	for _, k := range engine.Kinds() {
		names = append(names, k.String())
	}

	return names
}
