package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/scenario"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := cli.Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Empty(t, cfg.ScenarioFile)
	assert.Nil(t, cfg.Algorithm)
	assert.Nil(t, cfg.Speed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 25, cfg.Rows)
}

func TestParse_Overrides(t *testing.T) {
	cfg, _, err := cli.Parse([]string{
		"-maze", "-seed", "7", "-rows", "11", "-cols", "13", "-braiding", "0.5",
		"-algorithm", "greedy", "-speed", "slow", "-log-level", "DEBUG", "-log-format", "json",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, cfg.Maze)
	assert.Equal(t, int64(7), cfg.Seed)
	require.NotNil(t, cfg.Algorithm)
	assert.Equal(t, engine.Greedy, *cfg.Algorithm)
	require.NotNil(t, cfg.Speed)
	assert.Equal(t, scenario.Slow, *cfg.Speed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":      {"-nope"},
		"bad algorithm":     {"-algorithm", "bogo"},
		"bad speed":         {"-speed", "warp"},
		"bad log format":    {"-log-format", "xml"},
		"bad log level":     {"-log-level", "trace"},
		"maze and file":     {"-maze", "-scenario-file", "x.hcl"},
		"name without file": {"-scenario", "gap"},
		"tiny maze":         {"-maze", "-rows", "2"},
		"braiding range":    {"-braiding", "1.5"},
		"replay compare":    {"-replay", "-compare"},
		"stray argument":    {"grid.hcl"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, exit, err := cli.Parse(args, &bytes.Buffer{})
			assert.False(t, exit)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-help"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "-scenario-file")
}
