// Package gridtest holds fixtures and brute-force oracles shared by the
// algorithm tests.
package gridtest

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

// Layout builds a grid from an ASCII picture and fails the test on error.
func Layout(tb testing.TB, layout string, opts ...grid.Option) (*grid.Grid, grid.Coord, grid.Coord) {
	tb.Helper()
	g, start, goal, err := grid.FromLayout(layout, opts...)
	require.NoError(tb, err)

	return g, start, goal
}

// Random builds a rows×cols grid from seed with walls at the given density
// and random terrain elsewhere. Start and goal are the opposite corners and
// are kept open.
func Random(tb testing.TB, rows, cols int, seed int64, density float64) (*grid.Grid, grid.Coord, grid.Coord) {
	tb.Helper()
	g, err := grid.New(rows, cols, grid.WithSeed(seed))
	require.NoError(tb, err)
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	start, goal := grid.Coord{}, grid.Coord{Row: rows - 1, Col: cols - 1}

	g.Each(func(c *grid.Cell) {
		if c.Coord() == start || c.Coord() == goal {
			return
		}
		if rng.Float64() < density {
			c.SetWall(true)
			return
		}
		c.SetTerrain(grid.Terrain(rng.Intn(int(grid.Wall))))
	})
	g.RebuildEdges()

	return g, start, goal
}

// TwoRoutes returns a 2×4 grid whose cheapest start→goal route costs 5 over
// five edges along the bottom row, while the fewest-edge route runs along
// the top row for a cost of 12.
func TwoRoutes(tb testing.TB) (*grid.Grid, grid.Coord, grid.Coord) {
	tb.Helper()
	g, start, goal := Layout(tb, `
		S..G
		....
	`, grid.WithWeightFunc(grid.ConstantWeight(1)))

	set := func(a, b grid.Coord, w float64) {
		require.NoError(tb, g.SetEdgeWeight(a, b, w))
	}
	c := func(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }
	set(c(0, 0), c(0, 1), 4)
	set(c(0, 1), c(0, 2), 4)
	set(c(0, 2), c(0, 3), 4)
	for _, col := range []int{1, 2} {
		set(c(0, col), c(1, col), 9)
		set(c(1, col), c(0, col), 9)
	}

	return g, start, goal
}

// CheapPath and ShortPath are the expected routes through TwoRoutes.
var (
	CheapPath = []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 0, Col: 3}}
	ShortPath = []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}
)

// WalledOff returns a 3×3 grid where start is sealed in its corner.
func WalledOff(tb testing.TB) (*grid.Grid, grid.Coord, grid.Coord) {
	tb.Helper()

	return Layout(tb, `
		S#.
		##.
		..G
	`, grid.WithSeed(1))
}

// CheapestCost computes the minimum start→goal cost by Bellman-Ford
// relaxation over every edge. It is independent of the searchers under
// test. Returns false when goal is unreachable.
func CheapestCost(g *grid.Grid, start, goal grid.Coord) (float64, bool) {
	dist := make([]float64, g.Size())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.Index(start)] = 0
	for round := 0; round < g.Size(); round++ {
		changed := false
		g.Each(func(c *grid.Cell) {
			d := dist[g.Index(c.Coord())]
			if math.IsInf(d, 1) {
				return
			}
			for _, e := range c.Edges() {
				if j := g.Index(e.To); d+e.Weight < dist[j] {
					dist[j] = d + e.Weight
					changed = true
				}
			}
		})
		if !changed {
			break
		}
	}
	d := dist[g.Index(goal)]

	return d, !math.IsInf(d, 1)
}

// FewestEdges returns the minimum number of edges on any start→goal route.
func FewestEdges(g *grid.Grid, start, goal grid.Coord) (int, bool) {
	hops := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == goal {
			return hops[u], true
		}
		for _, e := range g.At(u).Edges() {
			if _, seen := hops[e.To]; !seen {
				hops[e.To] = hops[u] + 1
				queue = append(queue, e.To)
			}
		}
	}

	return 0, false
}

// RequireValidPath checks that path runs from start to goal along existing
// edges between non-wall cells, and returns its cost.
func RequireValidPath(tb testing.TB, g *grid.Grid, path []grid.Coord, start, goal grid.Coord) float64 {
	tb.Helper()
	require.NotEmpty(tb, path)
	require.Equal(tb, start, path[0], "path must begin at start")
	require.Equal(tb, goal, path[len(path)-1], "path must end at goal")
	for _, c := range path {
		require.False(tb, g.At(c).IsWall(), "path crosses wall at %v", c)
	}
	cost, err := g.PathCost(path)
	require.NoError(tb, err)

	return cost
}

// Flags is a snapshot of one cell's search state.
type Flags struct {
	Visited, Open, Closed, InPath bool
	Parent                        grid.Coord
	HasParent                     bool
	Distance                      float64
}

// Snapshot records the search state of every cell in row-major order.
func Snapshot(g *grid.Grid) []Flags {
	out := make([]Flags, 0, g.Size())
	g.Each(func(c *grid.Cell) {
		p, ok := c.Parent()
		out = append(out, Flags{
			Visited:   c.Visited(),
			Open:      c.InOpenSet(),
			Closed:    c.InClosedSet(),
			InPath:    c.InPath(),
			Parent:    p,
			HasParent: ok,
			Distance:  c.Distance(),
		})
	})

	return out
}
