package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/session"
)

// Commands.
const (
	CommandRun   = "run"
	CommandServe = "serve"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is a parsed command line.
type Invocation struct {
	Command string
	Config  config.Config
}

// Parse processes command-line arguments. It returns the invocation, a
// boolean telling the caller to exit cleanly (help was printed), or an
// ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("pathgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pathgrid - step-by-step path search on a weighted grid.

Usage:
  pathgrid [options] [run|serve]

Commands:
  run     animate one search in the terminal and print its cost (default)
  serve   start the HTTP API

Options:
`)
		flagSet.PrintDefaults()
	}

	configPath := flagSet.String("config", "", "Path to an HCL config file.")
	algorithm := flagSet.String("algorithm", "", "Search algorithm: bfs, dfs, dijkstra or astar.")
	size := flagSet.String("size", "", "Grid size preset: small, medium, large or xlarge.")
	rows := flagSet.Int("rows", 0, "Grid rows.")
	cols := flagSet.Int("cols", 0, "Grid columns.")
	seed := flagSet.Int64("seed", 0, "Random seed for weights and mazes. 0 picks one from the clock.")
	start := flagSet.String("start", "", "Start cell as \"row,col\".")
	goal := flagSet.String("goal", "", "Goal cell as \"row,col\".")
	mazeKind := flagSet.String("maze", "", "Maze to generate first: none, scatter or perfect.")
	density := flagSet.Float64("density", 0, "Wall density for the scatter maze.")
	interval := flagSet.Duration("interval", 0, "Delay between animation frames.")
	color := flagSet.Bool("color", false, "Draw frames in colour.")
	weights := flagSet.Bool("weights", false, "Print the edge-weight overlay before searching.")
	indexed := flagSet.Bool("indexed", false, "Use the heap frontier for Dijkstra and A*.")
	addr := flagSet.String("addr", "", "Listen address for serve.")
	logLevel := flagSet.String("log-level", "", "Logging level: debug, info, warn or error.")
	logFormat := flagSet.String("log-format", "", "Log output format: text or json.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	command := CommandRun
	switch flagSet.NArg() {
	case 0:
	case 1:
		command = flagSet.Arg(0)
	default:
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: " + strings.Join(flagSet.Args(), " ")}
	}
	if command != CommandRun && command != CommandServe {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: want run or serve", command)}
	}

	cfg := config.Default()
	if err := config.LoadDotEnv(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *configPath != "" {
		if err := config.LoadFile(*configPath, &cfg); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Only flags the user actually passed override the layered config.
	var flagErr error
	flagSet.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "algorithm":
			k, err := algorithms.ParseKind(*algorithm)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Algorithm = k
		case "size":
			p, err := session.ParsePreset(*size)
			if err != nil {
				flagErr = err
				return
			}
			if !isSet(flagSet, "rows") {
				cfg.Rows = p.Rows
			}
			if !isSet(flagSet, "cols") {
				cfg.Cols = p.Cols
			}
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "seed":
			cfg.Seed = *seed
		case "start":
			cfg.Start = *start
		case "goal":
			cfg.Goal = *goal
		case "maze":
			cfg.Maze = strings.ToLower(*mazeKind)
		case "density":
			cfg.MazeDensity = *density
		case "interval":
			cfg.Interval = *interval
		case "color":
			cfg.Color = *color
		case "weights":
			cfg.ShowWeights = *weights
		case "indexed":
			cfg.IndexedFrontier = *indexed
		case "addr":
			cfg.Addr = *addr
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevel)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormat)
		}
	})
	if flagErr != nil {
		return nil, false, &ExitError{Code: 2, Message: flagErr.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("command line parsed", "command", command, "config", *configPath)

	return &Invocation{Command: command, Config: cfg}, false, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}
