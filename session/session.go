package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/search"
)

var (
	// ErrNoRun is returned when stepping a session that has no active run.
	ErrNoRun = errors.New("session: no search has been started")

	// ErrSessionNotFound is returned by Manager for an unknown id.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrUnknownPreset is returned by ParsePreset.
	ErrUnknownPreset = errors.New("session: unknown size preset")

	// ErrBadInterval is returned by Animate for a non-positive interval.
	ErrBadInterval = errors.New("session: animation interval must be positive")
)

// Config holds the construction parameters of a Session.
// Zero fields fall back to defaults.
type Config struct {
	// Rows and Cols default to the Medium preset.
	Rows, Cols int

	// Seed makes edge weights and generated mazes reproducible.
	// Zero means a time-seeded source.
	Seed int64

	// MinWeight and MaxWeight bound the edge weight draw; zero keeps the
	// grid defaults.
	MinWeight, MaxWeight int

	// IndexedFrontier selects the heap frontier for Dijkstra and A*.
	IndexedFrontier bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// merge fills the zero fields of c from base.
func (c Config) merge(base Config) Config {
	if c.Rows == 0 {
		c.Rows = base.Rows
	}
	if c.Cols == 0 {
		c.Cols = base.Cols
	}
	if c.Seed == 0 {
		c.Seed = base.Seed
	}
	if c.MinWeight == 0 && c.MaxWeight == 0 {
		c.MinWeight, c.MaxWeight = base.MinWeight, base.MaxWeight
	}
	if !c.IndexedFrontier {
		c.IndexedFrontier = base.IndexedFrontier
	}
	if c.Logger == nil {
		c.Logger = base.Logger
	}

	return c
}

// Session is one grid, its endpoints and the current run.
type Session struct {
	id     uuid.UUID
	logger *slog.Logger
	cfg    Config
	rng    *rand.Rand
	mu     sync.Mutex

	g           *grid.Grid
	start, goal grid.Coord

	kind     algorithms.Kind
	searcher search.Searcher
	calls    int
}

// New builds a session with a fresh grid and default endpoints.
func New(c Config) (*Session, error) {
	c = c.merge(Config{Rows: Medium.Rows, Cols: Medium.Cols, Logger: slog.Default()})
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	id := uuid.New()
	s := &Session{
		id:     id,
		cfg:    c,
		rng:    rand.New(rand.NewSource(c.Seed)),
		logger: c.Logger.With("session_id", id.String()),
	}
	if err := s.resize(c.Rows, c.Cols); err != nil {
		return nil, err
	}
	s.logger.Debug("session created", "rows", c.Rows, "cols", c.Cols, "seed", c.Seed)

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Size returns the grid dimensions.
func (s *Session) Size() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Rows(), s.g.Cols()
}

// Endpoints returns the current start and goal.
func (s *Session) Endpoints() (start, goal grid.Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.start, s.goal
}

// Resize replaces the grid with a fresh rows×cols one. Endpoints go back
// to their defaults and the current run is dropped.
func (s *Session) Resize(rows, cols int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resize(rows, cols); err != nil {
		return err
	}
	s.logger.Info("grid resized", "rows", rows, "cols", cols)

	return nil
}

func (s *Session) resize(rows, cols int) error {
	opts := []grid.Option{grid.WithRand(s.rng)}
	if s.cfg.MinWeight != 0 || s.cfg.MaxWeight != 0 {
		opts = append(opts, grid.WithWeightRange(s.cfg.MinWeight, s.cfg.MaxWeight))
	}
	g, err := grid.New(rows, cols, opts...)
	if err != nil {
		return fmt.Errorf("session: resize: %w", err)
	}
	s.g = g
	s.start, s.goal = DefaultEndpoints(rows, cols)
	s.dropRun()

	return nil
}

// SetEndpoints parses "row,col" for start and goal. Text that does not
// parse or lies outside the grid falls back to the default cell. The
// resolved endpoints are returned.
func (s *Session) SetEndpoints(startText, goalText string) (start, goal grid.Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defStart, defGoal := DefaultEndpoints(s.g.Rows(), s.g.Cols())
	s.start = s.resolve(startText, defStart)
	s.goal = s.resolve(goalText, defGoal)

	return s.start, s.goal
}

func (s *Session) resolve(text string, fallback grid.Coord) grid.Coord {
	c, err := grid.ParseCoord(text)
	if err != nil || !s.g.Contains(c) {
		return fallback
	}

	return c
}

// Start clears search state and begins a new run of kind between the
// current endpoints.
func (s *Session) Start(kind algorithms.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var opts []search.Option
	if s.cfg.IndexedFrontier {
		opts = append(opts, search.WithIndexedFrontier())
	}
	sr, err := algorithms.New(kind, opts...)
	if err != nil {
		return err
	}
	s.dropRun()
	if err := sr.Init(s.g, s.start, s.goal); err != nil {
		return fmt.Errorf("session: start %s: %w", kind, err)
	}
	s.kind, s.searcher = kind, sr
	s.logger.Info("search started", "algorithm", kind.String(), "start", s.start.String(), "goal", s.goal.String())
	if sr.Finished() {
		s.logFinish()
	}

	return nil
}

// Step advances the current run by one step and reports whether it has
// terminated. It returns ErrNoRun when no run was started.
func (s *Session) Step() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.step()
}

func (s *Session) step() (bool, error) {
	if s.searcher == nil {
		return true, ErrNoRun
	}
	if s.searcher.Finished() {
		return true, nil
	}
	done := s.searcher.Step()
	s.calls++
	if done {
		s.logFinish()
	}

	return done, nil
}

// Complete steps the current run until it terminates or ctx is done.
// A cancelled run stays resumable.
func (s *Session) Complete(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searcher == nil {
		return Summary{}, ErrNoRun
	}
	if s.searcher.Finished() {
		return s.summary(), nil
	}
	n, err := search.Drain(ctx, s.searcher)
	s.calls += n
	if err != nil {
		return s.summary(), err
	}
	s.logFinish()

	return s.summary(), nil
}

// Animate steps the current run once per tick. After every step onFrame
// is called with the session unlocked, so it may call Render or Summary.
// An error from onFrame or ctx stops the loop.
func (s *Session) Animate(ctx context.Context, interval time.Duration, onFrame func(done bool) error) (Summary, error) {
	if interval <= 0 {
		return Summary{}, fmt.Errorf("%w: got %v", ErrBadInterval, interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.Summary(), ctx.Err()
		case <-ticker.C:
		}
		done, err := s.Step()
		if err != nil {
			return Summary{}, err
		}
		if onFrame != nil {
			if err := onFrame(done); err != nil {
				return s.Summary(), err
			}
		}
		if done {
			return s.Summary(), nil
		}
	}
}

// Summary reports the state of the current run.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.summary()
}

func (s *Session) summary() Summary {
	if s.searcher == nil {
		return Summary{}
	}
	sum := Summary{
		Algorithm: s.kind.Label(),
		Finished:  s.searcher.Finished(),
		Found:     s.searcher.HasPath(),
		Expanded:  algorithms.Expanded(s.searcher),
	}
	if sum.Found {
		path := s.searcher.Path()
		sum.Steps = len(path) - 1
		cost, err := s.g.PathCost(path)
		if err != nil {
			s.logger.Error("path does not follow grid edges", "error", err)
		}
		sum.Cost = cost
	}

	return sum
}

func (s *Session) logFinish() {
	sum := s.summary()
	s.logger.Info("search finished",
		"algorithm", s.kind.String(),
		"found", sum.Found,
		"cost", sum.Cost,
		"steps", sum.Steps,
		"expanded", sum.Expanded,
		"calls", s.calls,
	)
}

// Path returns the path of the current run, nil while searching or when
// none was found.
func (s *Session) Path() []grid.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searcher == nil || !s.searcher.HasPath() {
		return nil
	}

	return append([]grid.Coord(nil), s.searcher.Path()...)
}

// ToggleWall flips the wall at c and returns the new state.
func (s *Session) ToggleWall(c grid.Coord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wall, err := s.g.ToggleWall(c)
	if err != nil {
		return false, err
	}
	s.dropRun()
	s.logger.Debug("wall toggled", "cell", c.String(), "wall", wall)

	return wall, nil
}

// CycleTerrain advances c to the next terrain and returns it. A wall is
// removed first.
func (s *Session) CycleTerrain(c grid.Coord) (grid.Terrain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell := s.g.At(c)
	if cell == nil {
		return grid.Normal, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, c)
	}
	if cell.IsWall() {
		if err := s.g.SetWall(c, false); err != nil {
			return grid.Normal, err
		}
	}
	t, err := s.g.CycleTerrain(c)
	if err != nil {
		return grid.Normal, err
	}
	s.dropRun()
	s.logger.Debug("terrain cycled", "cell", c.String(), "terrain", t.String())

	return t, nil
}

// SetTerrain sets the terrain at c; grid.Wall places a wall.
func (s *Session) SetTerrain(c grid.Coord, t grid.Terrain) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell := s.g.At(c)
	if cell == nil {
		return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, c)
	}
	if t != grid.Wall && cell.IsWall() {
		if err := s.g.SetWall(c, false); err != nil {
			return err
		}
	}
	if err := s.g.SetTerrain(c, t); err != nil {
		return err
	}
	s.dropRun()

	return nil
}

// Reset clears walls, terrain and search state, redraws every weight,
// restores the default endpoints and drops the current run.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.Reset()
	s.start, s.goal = DefaultEndpoints(s.g.Rows(), s.g.Cols())
	s.dropRun()
	s.logger.Info("grid reset")
}

// ResetSearch clears search state only, keeping walls, terrain and edges.
func (s *Session) ResetSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropRun()
}

// GenerateMaze scatters walls with the given density and moves the
// endpoints to two random open cells.
func (s *Session) GenerateMaze(density float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropRun()
	if err := maze.Scatter(s.g, density, s.rng); err != nil {
		return err
	}
	if err := s.randomEndpoints(); err != nil {
		return err
	}
	s.logger.Info("maze generated", "density", density, "start", s.start.String(), "goal", s.goal.String(),
		"connected", s.g.Reachable(s.start, s.goal))

	return nil
}

// GeneratePerfectMaze carves a perfect maze and moves the endpoints to two
// random open cells.
func (s *Session) GeneratePerfectMaze() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropRun()
	maze.Wilson(s.g, s.rng)
	if err := s.randomEndpoints(); err != nil {
		return err
	}
	s.logger.Info("perfect maze generated", "start", s.start.String(), "goal", s.goal.String())

	return nil
}

// Regions describes how the open cells of the grid hang together.
type Regions struct {
	Count     int  `json:"count"`
	Largest   int  `json:"largest"`
	Connected bool `json:"connected"`
}

// Regions counts the connected regions of open cells and reports whether
// the goal is reachable from the start.
func (s *Session) Regions() Regions {
	s.mu.Lock()
	defer s.mu.Unlock()

	comps := s.g.Components()
	r := Regions{Count: len(comps), Connected: s.g.Reachable(s.start, s.goal)}
	for _, c := range comps {
		r.Largest = max(r.Largest, len(c))
	}

	return r
}

// Breach unwalls the fewest cells needed for the goal to be reachable from
// the start and returns them in route order. The current run is dropped
// only when something was opened.
func (s *Session) Breach() ([]grid.Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opened, err := maze.Breach(s.g, s.start, s.goal)
	if err != nil {
		return nil, err
	}
	if len(opened) > 0 {
		s.dropRun()
		s.logger.Info("walls breached", "opened", len(opened))
	}

	return opened, nil
}

func (s *Session) randomEndpoints() error {
	start, goal, err := maze.Endpoints(s.g, s.rng)
	if err != nil {
		return err
	}
	s.start, s.goal = start, goal

	return nil
}

// Render writes the current frame.
func (s *Session) Render(w io.Writer, opts ...render.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return render.Frame(w, s.g, s.start, s.goal, opts...)
}

// RenderWeights writes the edge-weight overlay.
func (s *Session) RenderWeights(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return render.Weights(w, s.g)
}

// Snapshot captures the grid and search state.
func (s *Session) Snapshot() render.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return render.Snapshot(s.g, s.start, s.goal)
}

// dropRun forgets the current searcher and clears search state.
func (s *Session) dropRun() {
	s.g.ResetSearchState()
	s.searcher = nil
	s.calls = 0
}
