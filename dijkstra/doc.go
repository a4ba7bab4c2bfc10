// Package dijkstra provides a steppable Dijkstra search over a grid.Grid.
//
// What
//
//   - Every cell starts at distance +Inf; start is opened at 0.
//   - One Step extracts the minimum-distance open cell, closes it, and
//     relaxes its outgoing edges towards non-wall, non-closed neighbours.
//   - The run ends with a path when the goal is extracted and without one
//     when the open set empties.
//
// Tie-break
//
//	Among open cells of equal distance the one inserted first wins. The
//	default open set is an insertion-ordered slice scanned linearly with a
//	strict less-than. search.WithIndexedFrontier swaps in a binary heap
//	keyed by (distance, insertion rank), which extracts cells in exactly
//	the same order, so traces are reproducible with either.
//
// Correctness
//
//	Edge weights are positive, so a closed cell's distance is final and
//	the path found has minimum total weight.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N²) over a run with the scan frontier, O(N log N) indexed.
//   - Memory: O(N).
package dijkstra
