// Package maze generates and repairs wall layouts on a grid.Grid.
//
// What:
//
//   - Scatter: clear the grid, then wall each cell independently with a
//     given probability.
//   - Wilson: carve a perfect maze (exactly one route between any two open
//     lattice cells) with loop-erased random walks.
//   - Endpoints: pick a random open start and a distinct open goal.
//   - Breach: knock down the fewest walls needed to connect two cells.
//
// All generators take an explicit *rand.Rand so a seed reproduces a maze,
// and rebuild the grid's edges once when done. Terrain is reset to Normal.
//
// Errors:
//
//   - ErrBadDensity: density outside [0, 1].
//   - ErrTooFewOpenCells: fewer than two non-wall cells to place endpoints on.
//   - grid.ErrOutOfBounds: Breach endpoint outside the grid.
package maze
