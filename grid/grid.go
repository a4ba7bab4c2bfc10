package grid

import (
	"fmt"
	"math"
	"math/rand"
)

// neighborOffsets lists (Δrow, Δcol) in adjacency order: left, right, up, down.
// Every algorithm that expands "in adjacency order" relies on it.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid owns all cells of a rows×cols grid graph and their edges.
//
// A Grid is not safe for concurrent use. It is shared between a driver and
// at most one searcher bound to it; the driver must not edit the grid while
// a searcher is mid-run unless it re-initialises that searcher.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major, index = row*cols + col
	rng        *rand.Rand
	weight     WeightFunc
}

// New builds a rows×cols grid of Normal cells and draws its edges.
// Returns ErrBadDimensions for non-positive sizes and ErrOptionViolation
// for invalid options.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.finalize()

	g := &Grid{
		rows:   rows,
		cols:   cols,
		cells:  make([]Cell, rows*cols),
		rng:    o.Rand,
		weight: o.Weight,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.index(r, c)] = newCell(r, c)
		}
	}
	g.buildEdges()

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.Row, c.Col)
}

// Cell returns the cell at (row, col), or nil when out of range.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}

	return &g.cells[g.index(row, col)]
}

// At returns the cell at c, or nil when out of range.
func (g *Grid) At(c Coord) *Cell {
	return g.Cell(c.Row, c.Col)
}

// Index maps an in-bounds coordinate to its row-major index.
func (g *Grid) Index(c Coord) int {
	return g.index(c.Row, c.Col)
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Neighbors returns the in-bounds orthogonal neighbours of c in adjacency
// order (left, right, up, down), walls included. Returns nil when c is out
// of range.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.Contains(c) {
		return nil
	}
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// buildEdges draws an edge from every non-wall cell to each non-wall
// neighbour. A weight that is not positive and finite leaves that pair
// disconnected.
func (g *Grid) buildEdges() {
	for i := range g.cells {
		from := &g.cells[i]
		if from.wall {
			continue
		}
		for _, d := range neighborOffsets {
			r, c := from.row+d[0], from.col+d[1]
			if !g.InBounds(r, c) {
				continue
			}
			to := &g.cells[g.index(r, c)]
			if to.wall {
				continue
			}
			w := g.weight(from, to, g.rng)
			if !(w > 0) || math.IsInf(w, 1) {
				continue
			}
			from.addEdge(Edge{To: to.Coord(), Weight: w})
		}
	}
}

// RebuildEdges clears every adjacency list and redraws all weights.
// Call it after any terrain or wall edit made through Cell setters.
// Complexity: O(R×C).
func (g *Grid) RebuildEdges() {
	for i := range g.cells {
		g.cells[i].clearEdges()
	}
	g.buildEdges()
}

// ResetSearchState clears the per-run state of every cell, leaving terrain,
// walls and edges untouched. Used between consecutive runs on one maze.
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].ResetSearchState()
	}
}

// Reset clears walls, terrain and search state on every cell, then
// rebuilds all edges.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].SetTerrain(Normal)
		g.cells[i].ResetSearchState()
	}
	g.RebuildEdges()
}

// ClearTerrain turns every cell into Normal ground and clears search state
// without rebuilding edges. Generators call it before placing walls and
// rebuild once at the end.
func (g *Grid) ClearTerrain() {
	for i := range g.cells {
		g.cells[i].SetTerrain(Normal)
		g.cells[i].ResetSearchState()
	}
}

// SetWall marks or unmarks c as a wall.
//
// Marking removes the cell's own edges and every edge pointing at it, so
// other weights are kept. Unmarking resets the terrain to Normal and
// rebuilds every edge. Setting the current state again is a no-op.
func (g *Grid) SetWall(c Coord, wall bool) error {
	cell := g.At(c)
	if cell == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if cell.wall == wall {
		return nil
	}
	cell.SetWall(wall)
	if !wall {
		g.RebuildEdges()
		return nil
	}
	cell.clearEdges()
	for i := range g.cells {
		g.cells[i].removeEdgesTo(c)
	}

	return nil
}

// ToggleWall flips the wall flag of c and returns the new state.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	cell := g.At(c)
	if cell == nil {
		return false, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	wall := !cell.wall

	return wall, g.SetWall(c, wall)
}

// SetTerrain sets the terrain of c and rebuilds edges so the new cost is
// reflected in the weights of edges landing on it. Wall goes through
// SetWall.
func (g *Grid) SetTerrain(c Coord, t Terrain) error {
	cell := g.At(c)
	if cell == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if t == Wall {
		return g.SetWall(c, true)
	}
	cell.SetTerrain(t)
	g.RebuildEdges()

	return nil
}

// CycleTerrain advances c to the next terrain in the Normal → Sand → Water
// → Mountain cycle and returns it.
func (g *Grid) CycleTerrain(c Coord) (Terrain, error) {
	cell := g.At(c)
	if cell == nil {
		return Normal, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	next := cell.terrain.Next()

	return next, g.SetTerrain(c, next)
}

// EdgeWeight returns the weight of the edge from → to, if it exists.
func (g *Grid) EdgeWeight(from, to Coord) (float64, bool) {
	cell := g.At(from)
	if cell == nil {
		return 0, false
	}
	e, ok := cell.EdgeTo(to)

	return e.Weight, ok
}

// SetEdgeWeight overwrites the weight of the existing edge from → to.
// It is a fine-grained edit; the next RebuildEdges redraws it.
func (g *Grid) SetEdgeWeight(from, to Coord, w float64) error {
	if !(w > 0) || math.IsInf(w, 1) {
		return fmt.Errorf("%w: %v→%v weight=%g", ErrBadWeight, from, to, w)
	}
	cell := g.At(from)
	if cell == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	for i := range cell.edges {
		if cell.edges[i].To == to {
			cell.edges[i].Weight = w
			return nil
		}
	}

	return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// MinEdgeWeight returns the smallest weight over all edges, or +Inf when
// the grid has none.
// Complexity: O(R×C).
func (g *Grid) MinEdgeWeight() float64 {
	lo := math.Inf(1)
	for i := range g.cells {
		for _, e := range g.cells[i].edges {
			if e.Weight < lo {
				lo = e.Weight
			}
		}
	}

	return lo
}

// PathCost sums the edge weights along path. A missing edge between two
// consecutive cells is a data-model inconsistency and is reported as
// ErrEdgeNotFound. Empty and single-cell paths cost 0.
func (g *Grid) PathCost(path []Coord) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.EdgeWeight(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v on path", ErrEdgeNotFound, path[i], path[i+1])
		}
		total += w
	}

	return total, nil
}
