package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []grid.Option
		err        error
	}{
		{"ZeroRows", 0, 3, nil, grid.ErrBadDimensions},
		{"NegativeCols", 3, -1, nil, grid.ErrBadDimensions},
		{"InvertedRange", 2, 2, []grid.Option{grid.WithWeightRange(5, 2)}, grid.ErrOptionViolation},
		{"ZeroMin", 2, 2, []grid.Option{grid.WithWeightRange(0, 2)}, grid.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols, tc.opts...)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

func TestNew_EdgeCountsAndWeights(t *testing.T) {
	g, err := grid.New(3, 4, grid.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 4, g.Cols())
	require.Equal(t, 12, g.Size())

	total := 0
	g.Each(func(c *grid.Cell) {
		assert.Len(t, c.Edges(), len(g.Neighbors(c.Coord())), "cell %v", c.Coord())
		for _, e := range c.Edges() {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.LessOrEqual(t, e.Weight, 9.0)
			assert.Equal(t, math.Trunc(e.Weight), e.Weight, "weights are integers")
			assert.Equal(t, 1.0, grid.Manhattan(c.Coord(), e.To))
		}
		total += len(c.Edges())
		assert.True(t, math.IsInf(c.Distance(), 1))
	})
	// 2 × (rows×(cols-1) + cols×(rows-1)) directed edges.
	assert.Equal(t, 2*(3*3+4*2), total)
}

func TestNew_SeedIsReproducible(t *testing.T) {
	a, err := grid.New(5, 5, grid.WithSeed(42))
	require.NoError(t, err)
	b, err := grid.New(5, 5, grid.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	a.Each(func(c *grid.Cell) {
		other := b.At(c.Coord())
		assert.Equal(t, c.Edges(), other.Edges())
	})
}

func TestNeighbors_AdjacencyOrder(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithWeightFunc(grid.ConstantWeight(1)))
	require.NoError(t, err)

	assert.Equal(t, []grid.Coord{{1, 0}, {1, 2}, {0, 1}, {2, 1}}, g.Neighbors(grid.Coord{Row: 1, Col: 1}))
	assert.Equal(t, []grid.Coord{{0, 1}, {1, 0}}, g.Neighbors(grid.Coord{}))
	assert.Nil(t, g.Neighbors(grid.Coord{Row: 3, Col: 0}))
	assert.Nil(t, g.Cell(-1, 0))
	assert.Equal(t, grid.Coord{Row: 2, Col: 1}, g.Coordinate(g.Index(grid.Coord{Row: 2, Col: 1})))
}

//----------------------------------------------------------------------------//
// Editing
//----------------------------------------------------------------------------//

func TestSetWall_RemovesBothDirections(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithSeed(7))
	require.NoError(t, err)
	mid := grid.Coord{Row: 1, Col: 1}
	before, ok := g.EdgeWeight(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1})
	require.True(t, ok)

	require.NoError(t, g.SetWall(mid, true))
	assert.True(t, g.At(mid).IsWall())
	assert.Equal(t, grid.Wall, g.At(mid).Terrain())
	assert.Empty(t, g.At(mid).Edges())
	for _, n := range g.Neighbors(mid) {
		_, ok := g.EdgeWeight(n, mid)
		assert.False(t, ok, "edge %v→%v should be gone", n, mid)
	}
	// Unrelated weights survive an incremental wall placement.
	after, ok := g.EdgeWeight(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1})
	require.True(t, ok)
	assert.Equal(t, before, after)

	require.NoError(t, g.SetWall(mid, false))
	assert.Equal(t, grid.Normal, g.At(mid).Terrain())
	assert.Len(t, g.At(mid).Edges(), 4)
}

func TestToggleWall(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithSeed(1))
	require.NoError(t, err)

	wall, err := g.ToggleWall(grid.Coord{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.True(t, wall)
	wall, err = g.ToggleWall(grid.Coord{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.False(t, wall)

	_, err = g.ToggleWall(grid.Coord{Row: 5, Col: 5})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestSetTerrain_ScalesIncomingWeights(t *testing.T) {
	g, err := grid.New(1, 2, grid.WithWeightFunc(grid.UniformTerrainWeight(3, 3)))
	require.NoError(t, err)
	a, b := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1}

	require.NoError(t, g.SetTerrain(b, grid.Water))
	w, ok := g.EdgeWeight(a, b)
	require.True(t, ok)
	assert.Equal(t, 15.0, w)
	w, ok = g.EdgeWeight(b, a)
	require.True(t, ok)
	assert.Equal(t, 3.0, w)

	require.NoError(t, g.SetTerrain(b, grid.Wall))
	assert.True(t, g.At(b).IsWall())
	_, ok = g.EdgeWeight(a, b)
	assert.False(t, ok)
}

func TestCycleTerrain(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	c := grid.Coord{}

	want := []grid.Terrain{grid.Sand, grid.Water, grid.Mountain, grid.Normal}
	for _, w := range want {
		got, err := g.CycleTerrain(c)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestSetEdgeWeight(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithSeed(3))
	require.NoError(t, err)
	a, b := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1}

	require.NoError(t, g.SetEdgeWeight(a, b, 4.5))
	w, _ := g.EdgeWeight(a, b)
	assert.Equal(t, 4.5, w)

	assert.ErrorIs(t, g.SetEdgeWeight(a, b, 0), grid.ErrBadWeight)
	assert.ErrorIs(t, g.SetEdgeWeight(a, b, math.Inf(1)), grid.ErrBadWeight)
	assert.ErrorIs(t, g.SetEdgeWeight(a, grid.Coord{Row: 1, Col: 1}, 2), grid.ErrEdgeNotFound)
}

func TestMinEdgeWeight(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithWeightFunc(grid.ConstantWeight(3)))
	require.NoError(t, err)
	assert.Equal(t, 3.0, g.MinEdgeWeight())

	require.NoError(t, g.SetEdgeWeight(grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 0}, 0.25))
	assert.Equal(t, 0.25, g.MinEdgeWeight())

	lone, err := grid.New(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lone.MinEdgeWeight(), 1))
}

func TestWeightFunc_NonPositiveMeansNoEdge(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithWeightFunc(func(_, to *grid.Cell, _ *rand.Rand) float64 {
		if to.Col() == 1 {
			return 0
		}
		return 1
	}))
	require.NoError(t, err)
	g.Each(func(c *grid.Cell) {
		for _, e := range c.Edges() {
			assert.NotEqual(t, 1, e.To.Col)
		}
	})
}

//----------------------------------------------------------------------------//
// Search state
//----------------------------------------------------------------------------//

func TestResetSearchState_KeepsMaze(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, g.SetWall(grid.Coord{Row: 1, Col: 1}, true))
	require.NoError(t, g.SetTerrain(grid.Coord{Row: 0, Col: 1}, grid.Sand))
	edges := append([]grid.Edge(nil), g.At(grid.Coord{}).Edges()...)

	c := g.At(grid.Coord{Row: 1, Col: 0})
	c.SetVisited(true)
	c.SetInOpenSet(true)
	c.SetInClosedSet(true)
	c.SetInPath(true)
	c.SetParent(grid.Coord{})
	c.SetDistance(3)
	require.True(t, c.Discovered())

	g.ResetSearchState()
	assert.False(t, c.Visited() || c.InOpenSet() || c.InClosedSet() || c.InPath())
	_, has := c.Parent()
	assert.False(t, has)
	assert.True(t, math.IsInf(c.Distance(), 1))
	assert.True(t, g.At(grid.Coord{Row: 1, Col: 1}).IsWall())
	assert.Equal(t, grid.Sand, g.At(grid.Coord{Row: 0, Col: 1}).Terrain())
	assert.Equal(t, edges, g.At(grid.Coord{}).Edges())
}

func TestReset_ClearsMaze(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, g.SetWall(grid.Coord{Row: 1, Col: 1}, true))
	g.Reset()
	g.Each(func(c *grid.Cell) {
		assert.False(t, c.IsWall())
		assert.Len(t, c.Edges(), 2)
	})
}

func TestPathCost(t *testing.T) {
	g, err := grid.New(1, 3, grid.WithWeightFunc(grid.ConstantWeight(2)))
	require.NoError(t, err)

	cost, err := g.PathCost([]grid.Coord{{0, 0}, {0, 1}, {0, 2}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost)

	cost, err = g.PathCost([]grid.Coord{{0, 0}})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = g.PathCost([]grid.Coord{{0, 0}, {0, 2}})
	assert.ErrorIs(t, err, grid.ErrEdgeNotFound)
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

func TestParseCoord(t *testing.T) {
	c, err := grid.ParseCoord(" 3, 14 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 3, Col: 14}, c)
	assert.Equal(t, "3,14", c.String())

	for _, bad := range []string{"", "3", "a,b", "1,2,3"} {
		_, err := grid.ParseCoord(bad)
		assert.ErrorIs(t, err, grid.ErrBadCoord, "input %q", bad)
	}
}

func TestTerrain(t *testing.T) {
	for _, tc := range []struct {
		t    grid.Terrain
		cost float64
		name string
	}{
		{grid.Normal, 1, "normal"},
		{grid.Sand, 2, "sand"},
		{grid.Water, 5, "water"},
		{grid.Mountain, 10, "mountain"},
	} {
		assert.Equal(t, tc.cost, tc.t.Cost())
		assert.Equal(t, tc.name, tc.t.String())
		parsed, err := grid.ParseTerrain(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.t, parsed)
	}
	assert.True(t, math.IsInf(grid.Wall.Cost(), 1))
	assert.Equal(t, grid.Normal, grid.Wall.Next())
	_, err := grid.ParseTerrain("lava")
	assert.ErrorIs(t, err, grid.ErrUnknownTerrain)
}

func TestFromLayout(t *testing.T) {
	g, start, goal, err := grid.FromLayout(`
		S.#
		:~^
		..G
	`, grid.WithWeightFunc(grid.UniformTerrainWeight(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, start)
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, goal)
	assert.True(t, g.At(grid.Coord{Row: 0, Col: 2}).IsWall())
	assert.Equal(t, grid.Sand, g.At(grid.Coord{Row: 1, Col: 0}).Terrain())
	assert.Equal(t, grid.Water, g.At(grid.Coord{Row: 1, Col: 1}).Terrain())
	assert.Equal(t, grid.Mountain, g.At(grid.Coord{Row: 1, Col: 2}).Terrain())

	w, ok := g.EdgeWeight(grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 1, Col: 1})
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	_, ok = g.EdgeWeight(grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 0, Col: 2})
	assert.False(t, ok)

	_, _, _, err = grid.FromLayout("..\n.")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, _, _, err = grid.FromLayout("  \n")
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
	_, _, _, err = grid.FromLayout(".x")
	assert.ErrorIs(t, err, grid.ErrUnknownTerrain)
}
