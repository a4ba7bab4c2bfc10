// Package algorithms selects a path-finding algorithm by name.
//
// It ties the four steppable searchers together behind one Kind:
//
//   - BFS      fewest edges, weights ignored
//   - DFS      any path, explores deep first
//   - Dijkstra cheapest path by edge weight
//   - AStar    cheapest path, guided by Manhattan distance
//
// New(kind, opts...) returns a fresh search.Searcher; drivers swap
// algorithms between runs by constructing a new one. ParseKind accepts the
// names used on the command line, in configuration and over HTTP.
package algorithms
