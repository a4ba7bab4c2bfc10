// Package pathgrid is a step-by-step path search engine for weighted
// grids: build a grid, paint walls and terrain, then watch BFS, DFS,
// Dijkstra or A* expand one cell at a time.
//
// 🚀 What is pathgrid?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: cells, 4-neighbour directed edges, terrain costs, walls
//		• Steppable searchers: BFS, DFS, Dijkstra, A* behind one contract
//		• Mazes: random scatter, Wilson's perfect maze, wall breaching
//		• Rendering: ASCII frames, colour, an edge-weight overlay
//		• Sessions: a grid + endpoints + current run, safe for concurrent use
//		• Surfaces: a terminal animator and an HTTP API
//
// ✨ Why steppable?
//
//   - Every algorithm exposes Init / Step / Finished / HasPath / Path, so a
//     driver can animate a run or pause it between steps.
//   - Search state lives on the cells (open, closed, path), so one frame
//     shows exactly what the algorithm has seen.
//   - Hooks (OnExpand, OnDiscover, OnFinish) trace a run without touching it.
//
// Layout:
//
//	grid/        Grid, Cell, Edge, Coord, Terrain; layouts and components
//	search/      the Searcher contract, shared run state, frontiers
//	bfs/ dfs/    unweighted searches (goal found on discovery)
//	dijkstra/    uniform-cost search
//	astar/       heuristic search (Manhattan by default)
//	algorithms/  Kind enum and factory
//	maze/        Scatter, Wilson, Endpoints, Breach
//	render/      text frames, weight overlay, JSON snapshots
//	session/     Session and Manager
//	config/      HCL + .env + PATHGRID_* settings
//	api/         gin HTTP API under /v1
//	cmd/pathgrid the command-line entrypoint (run | serve)
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S*#..
//	.*#..
//	.***G
//
//	go install github.com/katalvlaran/pathgrid/cmd/pathgrid@latest
package pathgrid
