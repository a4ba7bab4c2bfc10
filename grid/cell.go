package grid

import "math"

// Cell is one node of the grid graph.
//
// Row and column never change. Terrain and the wall flag persist across
// search runs until edited. The remaining fields are per-run search state,
// cleared by ResetSearchState.
//
// The setters on Cell touch only the cell itself. Edits that must keep the
// edge set consistent go through Grid.SetWall, Grid.SetTerrain and friends.
type Cell struct {
	row, col int

	terrain Terrain
	wall    bool

	visited  bool
	inOpen   bool
	inClosed bool
	inPath   bool

	parent    Coord // predecessor handle, valid only when hasParent
	hasParent bool
	distance  float64

	edges []Edge
}

func newCell(row, col int) Cell {
	return Cell{
		row:      row,
		col:      col,
		terrain:  Normal,
		distance: math.Inf(1),
	}
}

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column.
func (c *Cell) Col() int { return c.col }

// Coord returns the cell's coordinate handle.
func (c *Cell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// Terrain returns the cell's terrain kind.
func (c *Cell) Terrain() Terrain { return c.terrain }

// TerrainCost returns the traversal cost of the cell's terrain.
func (c *Cell) TerrainCost() float64 { return c.terrain.Cost() }

// IsWall reports whether the cell is impassable.
func (c *Cell) IsWall() bool { return c.wall }

// SetTerrain sets the terrain and keeps the wall flag consistent with it.
func (c *Cell) SetTerrain(t Terrain) {
	c.terrain = t
	c.wall = t == Wall
}

// SetWall sets the wall flag and keeps the terrain consistent with it.
// Clearing the flag on a wall turns the cell back into Normal ground.
func (c *Cell) SetWall(wall bool) {
	c.wall = wall
	switch {
	case wall:
		c.terrain = Wall
	case c.terrain == Wall:
		c.terrain = Normal
	}
}

// Visited reports whether the cell has been expanded in the current run.
func (c *Cell) Visited() bool { return c.visited }

// SetVisited sets the visited flag.
func (c *Cell) SetVisited(v bool) { c.visited = v }

// InOpenSet reports whether the cell is in the frontier.
func (c *Cell) InOpenSet() bool { return c.inOpen }

// SetInOpenSet sets the frontier flag.
func (c *Cell) SetInOpenSet(v bool) { c.inOpen = v }

// InClosedSet reports whether the cell has been fully expanded.
func (c *Cell) InClosedSet() bool { return c.inClosed }

// SetInClosedSet sets the closed-set flag.
func (c *Cell) SetInClosedSet(v bool) { c.inClosed = v }

// InPath reports whether the cell lies on the path found by the last run.
func (c *Cell) InPath() bool { return c.inPath }

// SetInPath sets the path flag.
func (c *Cell) SetInPath(v bool) { c.inPath = v }

// Discovered reports whether the cell is in the open or closed set.
func (c *Cell) Discovered() bool { return c.inOpen || c.inClosed }

// Parent returns the predecessor on the best known path, if any.
func (c *Cell) Parent() (Coord, bool) { return c.parent, c.hasParent }

// SetParent records p as the predecessor.
func (c *Cell) SetParent(p Coord) {
	c.parent = p
	c.hasParent = true
}

// ClearParent drops the predecessor link.
func (c *Cell) ClearParent() {
	c.parent = Coord{}
	c.hasParent = false
}

// Distance returns the tentative cost from the start (+Inf when unreached).
func (c *Cell) Distance() float64 { return c.distance }

// SetDistance sets the tentative cost from the start.
func (c *Cell) SetDistance(d float64) { c.distance = d }

// Edges returns the cell's outgoing edges in adjacency order.
// The slice belongs to the cell and must not be modified.
func (c *Cell) Edges() []Edge { return c.edges }

// EdgeTo returns the edge from c to dst, if one exists.
func (c *Cell) EdgeTo(dst Coord) (Edge, bool) {
	for _, e := range c.edges {
		if e.To == dst {
			return e, true
		}
	}

	return Edge{}, false
}

// ResetSearchState clears every per-run field. Terrain, wall flag and
// edges are untouched.
func (c *Cell) ResetSearchState() {
	c.visited = false
	c.inOpen = false
	c.inClosed = false
	c.inPath = false
	c.ClearParent()
	c.distance = math.Inf(1)
}

func (c *Cell) clearEdges() {
	c.edges = c.edges[:0]
}

func (c *Cell) addEdge(e Edge) {
	c.edges = append(c.edges, e)
}

// removeEdgesTo drops every edge whose destination is dst, preserving order.
func (c *Cell) removeEdgesTo(dst Coord) {
	kept := c.edges[:0]
	for _, e := range c.edges {
		if e.To != dst {
			kept = append(kept, e)
		}
	}
	c.edges = kept
}
