// Package search defines the steppable search contract shared by every
// path-finding algorithm in pathgrid, plus the bookkeeping they all embed.
//
// What:
//
//   - Searcher: Init / Step / Finished / HasPath / Path.
//   - Run: binding and validation, termination, path reconstruction and
//     marking, expansion counter and hooks. Algorithms embed it.
//   - Frontier: the open set of the weighted algorithms, either a linear
//     scan over insertion order or an indexed binary heap. Both yield the
//     same extraction order.
//   - Drain: step a Searcher to completion under a context.
//
// Why:
//
//	A driver (animation loop, HTTP handler, test) calls Step once per
//	frame and renders the cell flags in between. Every algorithm therefore
//	keeps its whole state between calls and never blocks.
//
// Lifecycle:
//
//	Init  → validates inputs, clears the grid's search state, seeds start.
//	Step  → one extraction and expansion; returns true once terminated.
//	Path  → start…goal after a successful run, nil otherwise.
//
// A terminated searcher is inert: further Step calls change nothing.
// A searcher that was never initialised reports itself finished with no path.
//
// Errors:
//
//   - ErrNilGrid: Init received a nil grid.
//   - ErrStartOutOfBounds: start lies outside the grid.
//   - ErrGoalOutOfBounds: goal lies outside the grid.
//
// "No path" is a terminal state, never an error.
package search
