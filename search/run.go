package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// Run carries the state every algorithm shares. Algorithms embed it and
// provide Init and Step on top.
//
// The zero Run is an unbound searcher: Finished reports true and Path is nil.
type Run struct {
	opts Options

	g           *grid.Grid
	start, goal grid.Coord
	bound       bool

	finished bool
	found    bool
	path     []grid.Coord

	expanded   int
	current    grid.Coord
	hasCurrent bool
}

// NewRun applies opts over DefaultOptions.
func NewRun(opts ...Option) Run {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Run{opts: o}
}

// Bind validates the inputs, clears all search state on g and on the run,
// and records the endpoints. A failed Bind leaves the run unbound.
// Complexity: O(R×C) for the grid reset.
func (r *Run) Bind(g *grid.Grid, start, goal grid.Coord) error {
	r.bound = false
	r.finished, r.found, r.path = false, false, nil
	r.expanded, r.hasCurrent = 0, false

	switch {
	case g == nil:
		return ErrNilGrid
	case !g.Contains(start):
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	case !g.Contains(goal):
		return fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}

	g.ResetSearchState()
	r.g, r.start, r.goal = g, start, goal
	r.bound = true

	return nil
}

// Options returns the configured hooks.
func (r *Run) Options() Options { return r.opts }

// Grid returns the bound grid, nil when unbound.
func (r *Run) Grid() *grid.Grid { return r.g }

// Start returns the bound start cell.
func (r *Run) Start() grid.Coord { return r.start }

// Goal returns the bound goal cell.
func (r *Run) Goal() grid.Coord { return r.goal }

// Active reports whether Step has work to do.
func (r *Run) Active() bool { return r.bound && !r.finished }

// Finished reports whether the run has terminated. An unbound run is
// finished.
func (r *Run) Finished() bool { return !r.bound || r.finished }

// HasPath reports whether the run terminated with a path.
func (r *Run) HasPath() bool { return r.found }

// Path returns start…goal after a successful run, nil otherwise.
// The slice is shared; callers must not modify it.
func (r *Run) Path() []grid.Coord { return r.path }

// Expanded returns how many cells have been taken off the frontier.
func (r *Run) Expanded() int { return r.expanded }

// Current returns the most recently expanded cell.
func (r *Run) Current() (grid.Coord, bool) { return r.current, r.hasCurrent }

// Expand moves c from the open to the closed set, marks it visited and
// fires OnExpand.
func (r *Run) Expand(c *grid.Cell) {
	c.SetInOpenSet(false)
	c.SetInClosedSet(true)
	c.SetVisited(true)
	r.expanded++
	r.current, r.hasCurrent = c.Coord(), true
	r.opts.OnExpand(c.Coord())
}

// Discover fires OnDiscover for the arc from → to.
func (r *Run) Discover(from, to grid.Coord) {
	r.opts.OnDiscover(from, to)
}

// Finish terminates the run. On success the path is rebuilt from the goal's
// predecessor chain and each of its cells is flagged InPath.
func (r *Run) Finish(found bool) {
	if r.finished {
		return
	}
	r.finished, r.found = true, found
	if found {
		r.path = r.trace()
		for _, c := range r.path {
			r.g.At(c).SetInPath(true)
		}
	}
	r.opts.OnFinish(found)
}

// trace walks predecessor handles from goal back to start and reverses.
// The walk is bounded by the grid size so a corrupted chain cannot loop.
func (r *Run) trace() []grid.Coord {
	path := []grid.Coord{r.goal}
	cur := r.goal
	for i := 0; i < r.g.Size() && cur != r.start; i++ {
		p, ok := r.g.At(cur).Parent()
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
