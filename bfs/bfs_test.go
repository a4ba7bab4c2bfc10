package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/internal/gridtest"
	"github.com/katalvlaran/pathgrid/search"
)

func TestBFS_FewestEdgesOnRandomGrids(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, start, goal := gridtest.Random(t, 12, 15, seed, 0.25)
		s := bfs.New()
		require.NoError(t, s.Init(g, start, goal))
		_, err := search.Drain(context.Background(), s)
		require.NoError(t, err)

		want, ok := gridtest.FewestEdges(g, start, goal)
		require.Equal(t, ok, s.HasPath(), "seed %d", seed)
		if !ok {
			assert.Nil(t, s.Path())
			continue
		}
		gridtest.RequireValidPath(t, g, s.Path(), start, goal)
		assert.Len(t, s.Path(), want+1, "seed %d", seed)
	}
}

func TestBFS_IgnoresWeights(t *testing.T) {
	g, start, goal := gridtest.TwoRoutes(t)
	s := bfs.New()
	require.NoError(t, s.Init(g, start, goal))
	_, err := search.Drain(context.Background(), s)
	require.NoError(t, err)

	require.True(t, s.HasPath())
	assert.Equal(t, gridtest.ShortPath, s.Path())
	cost := gridtest.RequireValidPath(t, g, s.Path(), start, goal)
	assert.Equal(t, 12.0, cost)
}

func TestBFS_WalledOff(t *testing.T) {
	g, start, goal := gridtest.WalledOff(t)
	s := bfs.New()
	require.NoError(t, s.Init(g, start, goal))

	assert.False(t, s.Step(), "first step expands start")
	assert.True(t, s.Step(), "queue is empty")
	assert.True(t, s.Finished())
	assert.False(t, s.HasPath())
	assert.Nil(t, s.Path())
	assert.Equal(t, 1, s.Expanded())
}

func TestBFS_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	s := bfs.New()
	require.NoError(t, s.Init(g, grid.Coord{}, grid.Coord{}))

	assert.True(t, s.Finished())
	assert.True(t, s.HasPath())
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}}, s.Path())
	assert.True(t, g.At(grid.Coord{}).InPath())
}

func TestBFS_FlagsAndHooks(t *testing.T) {
	g, start, goal := gridtest.Layout(t, "S..G", grid.WithSeed(1))
	var expanded []grid.Coord
	var discovered [][2]grid.Coord
	var finished []bool
	s := bfs.New(
		search.WithOnExpand(func(c grid.Coord) { expanded = append(expanded, c) }),
		search.WithOnDiscover(func(from, to grid.Coord) { discovered = append(discovered, [2]grid.Coord{from, to}) }),
		search.WithOnFinish(func(found bool) { finished = append(finished, found) }),
	)
	require.NoError(t, s.Init(g, start, goal))
	assert.True(t, g.At(start).InOpenSet())

	require.False(t, s.Step())
	assert.True(t, g.At(start).InClosedSet())
	assert.True(t, g.At(start).Visited())
	assert.False(t, g.At(start).InOpenSet())
	assert.True(t, g.At(grid.Coord{Row: 0, Col: 1}).InOpenSet())
	cur, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, start, cur)

	_, err := search.Drain(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, expanded)
	assert.Len(t, discovered, 3)
	assert.Equal(t, []bool{true}, finished)
	assert.Equal(t, 3.0, g.At(goal).Distance())
}

func TestBFS_IdempotentAfterFinish(t *testing.T) {
	g, start, goal := gridtest.Random(t, 8, 8, 3, 0.2)
	s := bfs.New()
	require.NoError(t, s.Init(g, start, goal))
	_, err := search.Drain(context.Background(), s)
	require.NoError(t, err)

	before := gridtest.Snapshot(g)
	found, path := s.HasPath(), s.Path()
	for i := 0; i < 5; i++ {
		assert.True(t, s.Step())
	}
	assert.Equal(t, found, s.HasPath())
	assert.Equal(t, path, s.Path())
	assert.Equal(t, before, gridtest.Snapshot(g))
}

func TestBFS_InitErrors(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	s := bfs.New()

	assert.ErrorIs(t, s.Init(nil, grid.Coord{}, grid.Coord{}), search.ErrNilGrid)
	assert.ErrorIs(t, s.Init(g, grid.Coord{Row: 2}, grid.Coord{}), search.ErrStartOutOfBounds)
	assert.ErrorIs(t, s.Init(g, grid.Coord{}, grid.Coord{Col: -1}), search.ErrGoalOutOfBounds)
	assert.True(t, s.Step(), "a failed Init leaves the searcher unbound")
	assert.False(t, s.HasPath())
}

func TestBFS_ReinitDiscardsProgress(t *testing.T) {
	g, start, goal := gridtest.Layout(t, `
		S...
		....
		...G
	`, grid.WithSeed(2))
	s := bfs.New()
	require.NoError(t, s.Init(g, start, goal))
	s.Step()
	s.Step()

	require.NoError(t, s.Init(g, start, goal))
	assert.Zero(t, s.Expanded())
	g.Each(func(c *grid.Cell) {
		if c.Coord() != start {
			assert.False(t, c.Discovered(), "cell %v", c.Coord())
		}
	})
}
