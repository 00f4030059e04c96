package app

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/scenario"
)

// Config is the validated input of one gridpath invocation.
type Config struct {
	ScenarioFile string
	Scenario     string

	Maze     bool
	Seed     int64
	Rows     int
	Cols     int
	Braiding float64

	// Algorithm and Speed override the scenario when set.
	Algorithm *engine.Kind
	Speed     *scenario.Speed
	Compare   bool

	PNG         string
	Replay      bool
	MetricsAddr string

	LogLevel  string
	LogFormat string
}

// Validate rejects contradictory settings.
func (c *Config) Validate() error {
	if c.Maze && c.ScenarioFile != "" {
		return errors.New("-maze and -scenario-file are mutually exclusive")
	}
	if c.Scenario != "" && c.ScenarioFile == "" {
		return errors.New("-scenario needs -scenario-file")
	}
	if c.Maze && (c.Rows < 3 || c.Cols < 3) {
		return fmt.Errorf("maze must be at least 3x3, got %dx%d", c.Rows, c.Cols)
	}
	if c.Braiding < 0 || c.Braiding > 1 {
		return fmt.Errorf("braiding must be within [0,1], got %v", c.Braiding)
	}
	if c.Replay && c.Compare {
		return errors.New("-replay shows a single algorithm; drop -compare")
	}

	return nil
}
