package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/internal/app"
)

func smallConfig() config.Config {
	c := config.Default()
	c.Rows, c.Cols = 3, 5
	c.Seed = 1
	c.MinWeight, c.MaxWeight = 1, 1
	c.Algorithm = algorithms.BFS
	c.Start, c.Goal = "0,0", "2,4"
	c.Interval = time.Millisecond
	c.LogLevel = "error"

	return c
}

func TestRun_Search(t *testing.T) {
	var out bytes.Buffer
	a := app.NewApp(&out, io.Discard, smallConfig())
	require.NoError(t, a.Run(context.Background(), "run"))

	text := out.String()
	assert.True(t, strings.HasSuffix(text, "BFS: Path Cost: 6.0 (Steps: 6)\n"), text)
	assert.Contains(t, text, "S")
	assert.Contains(t, text, "G")
	assert.NotContains(t, text, "\x1b[")
}

func TestRun_SearchWithWeightsAndColor(t *testing.T) {
	c := smallConfig()
	c.ShowWeights = true
	c.Color = true
	c.Algorithm = algorithms.AStar

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, io.Discard, c).Run(context.Background(), "run"))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, ". 1 . 1 . 1 . 1 .\n"), text)
	assert.Contains(t, text, "\x1b[H\x1b[2J")
	assert.True(t, strings.HasSuffix(text, "A*: Path Cost: 6.0 (Steps: 6)\n"), text)
}

func TestRun_SearchOnMazes(t *testing.T) {
	for _, kind := range []string{config.MazeScatter, config.MazePerfect} {
		t.Run(kind, func(t *testing.T) {
			c := smallConfig()
			c.Rows, c.Cols = 9, 9
			c.Maze = kind
			c.MazeDensity = 0.2

			var out bytes.Buffer
			require.NoError(t, app.NewApp(&out, io.Discard, c).Run(context.Background(), "run"))
			assert.Contains(t, out.String(), "BFS: ")
		})
	}
}

func TestRun_SameCell(t *testing.T) {
	c := smallConfig()
	c.Goal = "0,0"

	var out bytes.Buffer
	require.NoError(t, app.NewApp(&out, io.Discard, c).Run(context.Background(), "run"))
	assert.Equal(t, "\nS....\n.....\n.....\nBFS: Path Cost: 0.0 (Steps: 0)\n", out.String())
}

func TestRun_Cancelled(t *testing.T) {
	c := smallConfig()
	c.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := app.NewApp(io.Discard, io.Discard, c).Run(ctx, "run")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Serve(t *testing.T) {
	c := smallConfig()
	c.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, app.NewApp(io.Discard, io.Discard, c).Run(ctx, "serve"))
}

func TestRun_UnknownCommand(t *testing.T) {
	err := app.NewApp(io.Discard, io.Discard, smallConfig()).Run(context.Background(), "walk")
	assert.ErrorIs(t, err, app.ErrUnknownCommand)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := app.NewLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])

	buf.Reset()
	app.NewLogger("bogus", "text", &buf).Info("fallback")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "msg=fallback")
}
