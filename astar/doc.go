// Package astar provides a steppable A* search over a grid.Grid.
//
// A* is Dijkstra with the open set ordered by f = g + h, where g is the
// cost of the best known path from start and h estimates the cost still to
// go. The default h is Manhattan distance, |Δrow| + |Δcol|.
//
// Semantics
//
//   - g and f start at +Inf for every cell; start gets g = 0, f = h(start).
//   - The goal test happens when a cell is extracted, as in Dijkstra.
//   - Among equal f the earliest inserted cell wins, with either frontier.
//   - Closed cells are never reopened. This is optimal because every edge
//     weighs at least 1 and Manhattan distance is therefore consistent.
//   - Cell Distance mirrors g so renderers can show it.
//
// Complexity matches dijkstra; on open terrain far fewer cells are expanded.
package astar
