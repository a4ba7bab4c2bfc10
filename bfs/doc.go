// Package bfs provides a steppable breadth-first search over a grid.Grid.
//
// What
//
//   - One Step dequeues a cell, closes it and discovers its unvisited,
//     non-wall neighbours in adjacency order (left, right, up, down).
//   - A cell's predecessor is set on first discovery and never changed, so
//     the predecessor chain is a BFS tree and the path found has the fewest
//     possible edges. Edge weights are ignored.
//   - The run ends with a path as soon as the goal is discovered, and
//     without one when the queue runs dry.
//   - Cell Distance holds the hop count from start for discovered cells.
//
// Flags
//
//	discover → InOpenSet
//	expand   → InOpenSet cleared, InClosedSet and Visited set
//	success  → InPath on every path cell
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N) over a full run (each cell enqueued at most once)
//   - Memory: O(N) for the queue
//
// Usage
//
//	s := bfs.New(search.WithOnExpand(func(c grid.Coord) { /* redraw */ }))
//	if err := s.Init(g, start, goal); err != nil {
//		// ErrNilGrid, ErrStartOutOfBounds or ErrGoalOutOfBounds
//	}
//	for !s.Step() {
//	}
//	path := s.Path()
package bfs
