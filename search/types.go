package search

import (
	"errors"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for Init.
var (
	// ErrNilGrid is returned when Init receives a nil grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start out of bounds")

	// ErrGoalOutOfBounds is returned when the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal out of bounds")
)

// Searcher is a resumable single-pair search over a grid.
//
// Init binds the searcher to g and seeds start; Step performs one unit of
// work and reports termination. HasPath and Path are meaningful once
// Finished is true.
type Searcher interface {
	Init(g *grid.Grid, start, goal grid.Coord) error
	Step() bool
	Finished() bool
	HasPath() bool
	Path() []grid.Coord
}

// Option configures a searcher at construction.
type Option func(*Options)

// Options holds the hooks and frontier choice shared by all algorithms.
type Options struct {
	// OnExpand is called when a cell is taken off the frontier.
	OnExpand func(c grid.Coord)

	// OnDiscover is called when a cell is first reached, or reached more
	// cheaply, via from.
	OnDiscover func(from, to grid.Coord)

	// OnFinish is called once when the run terminates.
	OnFinish func(found bool)

	// IndexedFrontier selects the binary-heap frontier for Dijkstra and A*.
	// BFS and DFS ignore it.
	IndexedFrontier bool
}

// DefaultOptions returns no-op hooks and the linear-scan frontier.
func DefaultOptions() Options {
	return Options{
		OnExpand:   func(grid.Coord) {},
		OnDiscover: func(_, _ grid.Coord) {},
		OnFinish:   func(bool) {},
	}
}

// WithOnExpand registers a callback for every expansion.
func WithOnExpand(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback for every discovery or improvement.
func WithOnDiscover(fn func(from, to grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnFinish registers a callback for termination.
func WithOnFinish(fn func(found bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithIndexedFrontier swaps the linear-scan open set for a binary heap.
// Extraction order, and so every trace, is unchanged.
func WithIndexedFrontier() Option {
	return func(o *Options) {
		o.IndexedFrontier = true
	}
}
