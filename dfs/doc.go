// Package dfs provides a steppable depth-first search over a grid.Grid.
//
// The frontier is a LIFO stack. Neighbours are discovered in adjacency
// order when their parent is expanded; each cell is discovered once, its
// predecessor fixed at that moment, and never revisited. The run ends with a
// path when the goal is discovered and without one when the stack empties.
//
// The path found is valid but neither shortest in edges nor in weight. DFS
// is here for contrast in visualisations.
//
// Complexity: O(rows×cols) time and memory over a full run.
package dfs
