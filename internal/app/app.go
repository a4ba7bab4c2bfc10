package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathgrid/api"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/session"
)

// ErrUnknownCommand is returned by Run for a command other than run or
// serve.
var ErrUnknownCommand = errors.New("app: unknown command")

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// App holds the resolved configuration and the process-wide writers.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    config.Config
}

// NewApp builds an App. Frames and summaries go to outW, logs to logW.
func NewApp(outW, logW io.Writer, cfg config.Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("logger configured", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Run executes command until it completes or ctx is done.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "run":
		return a.search(ctx)
	case "serve":
		return a.serve(ctx)
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
}

// search animates one run in the terminal and prints its summary.
func (a *App) search(ctx context.Context) error {
	s, err := session.New(a.cfg.Session(a.logger))
	if err != nil {
		return err
	}

	switch a.cfg.Maze {
	case config.MazeScatter:
		err = s.GenerateMaze(a.cfg.MazeDensity)
	case config.MazePerfect:
		err = s.GeneratePerfectMaze()
	default:
		s.SetEndpoints(a.cfg.Start, a.cfg.Goal)
	}
	if err != nil {
		return err
	}

	if a.cfg.ShowWeights {
		if err := s.RenderWeights(a.outW); err != nil {
			return err
		}
		fmt.Fprintln(a.outW)
	}

	if err := s.Start(a.cfg.Algorithm); err != nil {
		return err
	}
	opts := []render.Option{render.WithColor(a.cfg.Color)}
	frame := func(bool) error {
		if a.cfg.Color {
			if _, err := io.WriteString(a.outW, clearScreen); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(a.outW)
		}
		return s.Render(a.outW, opts...)
	}

	sum := s.Summary()
	if !sum.Finished {
		if sum, err = s.Animate(ctx, a.cfg.Interval, frame); err != nil {
			return err
		}
	} else if err := frame(true); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.outW, "%s: %s\n", a.cfg.Algorithm.Label(), sum)

	return err
}

// serve runs the HTTP API until ctx is done.
func (a *App) serve(ctx context.Context) error {
	manager := session.NewManager(a.cfg.Session(a.logger))
	router := api.NewRouter(api.Config{
		Addr:        a.cfg.Addr,
		Controllers: []api.Controller{api.NewSessionController(manager, a.logger)},
		Logger:      a.logger,
	})

	return router.Run(ctx)
}
