package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/session"
)

var (
	// ErrInvalid marks a setting that failed validation or conversion.
	ErrInvalid = errors.New("config: invalid setting")

	// ErrParse marks an HCL file that does not parse or decode.
	ErrParse = errors.New("config: cannot read file")
)

// Maze generators a run can start from.
const (
	MazeNone    = "none"
	MazeScatter = "scatter"
	MazePerfect = "perfect"
)

// Config is the resolved set of settings.
type Config struct {
	Rows, Cols           int
	Seed                 int64
	MinWeight, MaxWeight int

	Algorithm       algorithms.Kind
	Start, Goal     string
	Interval        time.Duration
	IndexedFrontier bool
	Color           bool
	ShowWeights     bool

	Maze        string
	MazeDensity float64

	Addr string

	LogLevel  string
	LogFormat string
}

// Default returns the built-in settings.
func Default() Config {
	start, goal := session.DefaultEndpoints(session.Medium.Rows, session.Medium.Cols)

	return Config{
		Rows:        session.Medium.Rows,
		Cols:        session.Medium.Cols,
		MinWeight:   grid.DefaultMinWeight,
		MaxWeight:   grid.DefaultMaxWeight,
		Algorithm:   algorithms.AStar,
		Start:       start.String(),
		Goal:        goal.String(),
		Interval:    10 * time.Millisecond,
		Maze:        MazeNone,
		MazeDensity: maze.DefaultDensity,
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Rows <= 0 || c.Cols <= 0 {
		bad("grid size %d×%d must be positive", c.Rows, c.Cols)
	}
	if c.MinWeight < 1 || c.MaxWeight < c.MinWeight {
		bad("weight range [%d,%d] needs 1 ≤ min ≤ max", c.MinWeight, c.MaxWeight)
	}
	if !slices.Contains(algorithms.Kinds(), c.Algorithm) {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, algorithms.ErrUnknownKind))
	}
	if c.Interval <= 0 {
		bad("interval %v must be positive", c.Interval)
	}
	switch c.Maze {
	case MazeNone, MazeScatter, MazePerfect:
	default:
		bad("maze kind %q (want none, scatter or perfect)", c.Maze)
	}
	if !(c.MazeDensity >= 0 && c.MazeDensity <= 1) {
		bad("maze density %g outside [0, 1]", c.MazeDensity)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		bad("log format %q (want text or json)", c.LogFormat)
	}

	return errors.Join(errs...)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: log level %q (want debug, info, warn or error)", ErrInvalid, s)
}

// Session converts the grid and run settings into a session.Config.
func (c Config) Session(logger *slog.Logger) session.Config {
	return session.Config{
		Rows:            c.Rows,
		Cols:            c.Cols,
		Seed:            c.Seed,
		MinWeight:       c.MinWeight,
		MaxWeight:       c.MaxWeight,
		IndexedFrontier: c.IndexedFrontier,
		Logger:          logger,
	}
}
