// Package grid models a rectangular, weighted, 4-connected grid graph whose
// cells double as the visual state of a running search.
//
// What:
//
//   - Grid owns a fixed rows×cols array of Cells (row-major).
//   - Every non-wall Cell owns a directed adjacency list of Edges to its
//     in-bounds, non-wall neighbours, in the fixed order left, right, up, down.
//   - Edge weights are drawn independently per direction by a WeightFunc;
//     the default draws an integer in [1,9] and scales it by the terrain
//     cost of the destination cell.
//   - Cells carry transient per-run flags (visited, open, closed, path),
//     a predecessor handle and a distance. Search algorithms write them,
//     renderers read them.
//
// Why:
//
//   - A single source of truth for the animation of a step-by-step search.
//   - Walls and terrain survive between runs; search state is cleared by
//     ResetSearchState.
//
// Invariants:
//
//   - Cell.IsWall() == (Cell.Terrain() == Wall) at all times.
//   - After RebuildEdges, or SetWall(c, true), a wall cell has no outgoing
//     edges and no cell keeps an edge whose destination is a wall.
//   - Edge weights are strictly positive.
//
// Complexity:
//
//   - New, RebuildEdges, ResetSearchState, Reset: O(R×C).
//   - Cell, At, InBounds, EdgeWeight:             O(1).
//   - SetWall(c, true):                            O(R×C) (scans every adjacency list).
//   - Components:                                  O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrBadDimensions:   rows or cols ≤ 0.
//   - ErrOptionViolation: invalid Option (e.g. weight range below 1).
//   - ErrOutOfBounds:     coordinate outside the grid for an edit.
//   - ErrEdgeNotFound:    no edge between two cells.
//   - ErrBadWeight:       non-positive explicit weight.
//
// Out-of-range lookups through Cell and At return nil instead of an error.
package grid
