package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/session"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// unit builds a rows×cols session where every edge weighs 1.
func unit(t *testing.T, rows, cols int) *session.Session {
	t.Helper()
	s, err := session.New(session.Config{
		Rows: rows, Cols: cols, Seed: 7,
		MinWeight: 1, MaxWeight: 1,
		Logger: quiet,
	})
	require.NoError(t, err)

	return s
}

func TestNew_Defaults(t *testing.T) {
	s, err := session.New(session.Config{Logger: quiet})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID())

	rows, cols := s.Size()
	assert.Equal(t, session.Medium.Rows, rows)
	assert.Equal(t, session.Medium.Cols, cols)

	start, goal := s.Endpoints()
	assert.Equal(t, grid.Coord{}, start)
	assert.Equal(t, grid.Coord{Row: 10, Col: 10}, goal)
	assert.Equal(t, "-", s.Summary().String())
}

func TestNew_BadConfig(t *testing.T) {
	_, err := session.New(session.Config{Rows: -1, Cols: 3, Logger: quiet})
	assert.ErrorIs(t, err, grid.ErrBadDimensions)

	_, err = session.New(session.Config{Rows: 3, Cols: 3, MinWeight: 5, MaxWeight: 2, Logger: quiet})
	assert.ErrorIs(t, err, grid.ErrOptionViolation)
}

func TestResize(t *testing.T) {
	s := unit(t, 20, 20)
	require.NoError(t, s.Start(algorithms.BFS))

	require.NoError(t, s.Resize(5, 4))
	rows, cols := s.Size()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 4, cols)
	start, goal := s.Endpoints()
	assert.Equal(t, grid.Coord{}, start)
	assert.Equal(t, grid.Coord{Row: 4, Col: 3}, goal)

	_, err := s.Step()
	assert.ErrorIs(t, err, session.ErrNoRun)

	assert.ErrorIs(t, s.Resize(0, 1), grid.ErrBadDimensions)
}

func TestSetEndpoints_FallsBack(t *testing.T) {
	s := unit(t, 12, 12)
	cases := []struct {
		name        string
		start, goal string
		wantStart   grid.Coord
		wantGoal    grid.Coord
	}{
		{"valid", "2,3", " 11 , 0 ", grid.Coord{Row: 2, Col: 3}, grid.Coord{Row: 11, Col: 0}},
		{"garbage", "x", "1;2", grid.Coord{}, grid.Coord{Row: 10, Col: 10}},
		{"out of bounds", "-1,0", "12,12", grid.Coord{}, grid.Coord{Row: 10, Col: 10}},
		{"empty", "", "", grid.Coord{}, grid.Coord{Row: 10, Col: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, goal := s.SetEndpoints(tc.start, tc.goal)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantGoal, goal)
		})
	}
}

func TestStep_WithoutRun(t *testing.T) {
	s := unit(t, 3, 3)
	done, err := s.Step()
	assert.True(t, done)
	assert.ErrorIs(t, err, session.ErrNoRun)

	_, err = s.Complete(context.Background())
	assert.ErrorIs(t, err, session.ErrNoRun)
}

func TestStart_UnknownKind(t *testing.T) {
	s := unit(t, 3, 3)
	assert.ErrorIs(t, s.Start(algorithms.Kind(42)), algorithms.ErrUnknownKind)
}

func TestStep_UntilFinished(t *testing.T) {
	s := unit(t, 4, 4)
	require.NoError(t, s.Start(algorithms.Dijkstra))
	assert.Equal(t, "Searching...", s.Summary().String())

	for i := 0; ; i++ {
		require.Less(t, i, 100, "run did not terminate")
		done, err := s.Step()
		require.NoError(t, err)
		if done {
			break
		}
	}

	sum := s.Summary()
	assert.True(t, sum.Finished)
	assert.True(t, sum.Found)
	assert.Equal(t, "Dijkstra", sum.Algorithm)
	assert.Equal(t, 6.0, sum.Cost)
	assert.Equal(t, 6, sum.Steps)
	assert.Equal(t, "Path Cost: 6.0 (Steps: 6)", sum.String())
	assert.Len(t, s.Path(), 7)

	done, err := s.Step()
	assert.True(t, done)
	assert.NoError(t, err)
}

func TestComplete_AllKinds(t *testing.T) {
	s := unit(t, 6, 9)
	s.SetEndpoints("0,0", "5,8")
	for _, k := range algorithms.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			require.NoError(t, s.Start(k))
			sum, err := s.Complete(context.Background())
			require.NoError(t, err)
			assert.True(t, sum.Found)
			assert.Equal(t, k.Label(), sum.Algorithm)
			assert.Equal(t, float64(sum.Steps), sum.Cost)
			if k != algorithms.DFS {
				assert.Equal(t, 13, sum.Steps)
			}
		})
	}
}

func TestComplete_Cancelled(t *testing.T) {
	s := unit(t, 5, 5)
	require.NoError(t, s.Start(algorithms.BFS))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := s.Complete(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, sum.Finished)

	sum, err = s.Complete(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Found)
}

func TestStart_SameCell(t *testing.T) {
	s := unit(t, 3, 3)
	s.SetEndpoints("1,1", "1,1")
	require.NoError(t, s.Start(algorithms.AStar))
	sum := s.Summary()
	assert.True(t, sum.Finished)
	assert.Equal(t, "Path Cost: 0.0 (Steps: 0)", sum.String())
}

func TestEdits_DropRun(t *testing.T) {
	s := unit(t, 3, 3)
	edits := map[string]func() error{
		"toggle wall": func() error { _, err := s.ToggleWall(grid.Coord{Row: 1, Col: 1}); return err },
		"cycle":       func() error { _, err := s.CycleTerrain(grid.Coord{Row: 0, Col: 1}); return err },
		"set terrain": func() error { return s.SetTerrain(grid.Coord{Row: 2, Col: 1}, grid.Water) },
		"search":      func() error { s.ResetSearch(); return nil },
		"reset":       func() error { s.Reset(); return nil },
		"maze":        func() error { return s.GenerateMaze(0.2) },
		"perfect":     func() error { return s.GeneratePerfectMaze() },
		"resize":      func() error { return s.Resize(3, 3) },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Start(algorithms.BFS))
			_, err := s.Step()
			require.NoError(t, err)

			require.NoError(t, edit())
			_, err = s.Step()
			assert.ErrorIs(t, err, session.ErrNoRun)
			v := s.Snapshot()
			assert.Zero(t, v.Open)
			assert.Zero(t, v.Closed)
			assert.Equal(t, "-", s.Summary().String())
		})
	}
}

func TestToggleWall(t *testing.T) {
	s := unit(t, 3, 3)
	wall, err := s.ToggleWall(grid.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.True(t, wall)
	assert.Equal(t, 1, s.Snapshot().Walls)

	wall, err = s.ToggleWall(grid.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.False(t, wall)
	assert.Zero(t, s.Snapshot().Walls)

	_, err = s.ToggleWall(grid.Coord{Row: 3, Col: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestCycleTerrain(t *testing.T) {
	s := unit(t, 2, 2)
	c := grid.Coord{Row: 0, Col: 1}

	for _, want := range []grid.Terrain{grid.Sand, grid.Water, grid.Mountain, grid.Normal} {
		got, err := s.CycleTerrain(c)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, s.SetTerrain(c, grid.Wall))
	got, err := s.CycleTerrain(c)
	require.NoError(t, err)
	assert.Equal(t, grid.Sand, got)

	_, err = s.CycleTerrain(grid.Coord{Row: -1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.ErrorIs(t, s.SetTerrain(grid.Coord{Row: 9}, grid.Sand), grid.ErrOutOfBounds)
}

func TestSetTerrain_RaisesCost(t *testing.T) {
	s := unit(t, 1, 3)
	s.SetEndpoints("0,0", "0,2")
	require.NoError(t, s.SetTerrain(grid.Coord{Row: 0, Col: 1}, grid.Mountain))
	require.NoError(t, s.Start(algorithms.Dijkstra))
	sum, err := s.Complete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11.0, sum.Cost)
	assert.Equal(t, 2, sum.Steps)
}

func TestReset(t *testing.T) {
	s := unit(t, 12, 12)
	require.NoError(t, s.GenerateMaze(0.5))
	require.NotZero(t, s.Snapshot().Walls)

	s.Reset()
	assert.Zero(t, s.Snapshot().Walls)
	start, goal := s.Endpoints()
	assert.Equal(t, grid.Coord{}, start)
	assert.Equal(t, grid.Coord{Row: 10, Col: 10}, goal)
}

func TestGenerateMaze(t *testing.T) {
	s := unit(t, 10, 10)
	assert.ErrorIs(t, s.GenerateMaze(1.5), maze.ErrBadDensity)

	require.NoError(t, s.GenerateMaze(0.3))
	start, goal := s.Endpoints()
	assert.NotEqual(t, start, goal)
	v := s.Snapshot()
	assert.NotEqual(t, byte('#'), v.Cells[start.Row][start.Col])
	assert.NotEqual(t, byte('#'), v.Cells[goal.Row][goal.Col])

	assert.ErrorIs(t, s.GenerateMaze(1), maze.ErrTooFewOpenCells)
}

func TestGeneratePerfectMaze_AlwaysSolvable(t *testing.T) {
	s := unit(t, 15, 21)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.GeneratePerfectMaze())
		require.NoError(t, s.Start(algorithms.AStar))
		sum, err := s.Complete(context.Background())
		require.NoError(t, err)
		assert.True(t, sum.Found)
	}
}

func TestRegionsAndBreach(t *testing.T) {
	s := unit(t, 3, 5)
	s.SetEndpoints("0,0", "2,4")
	for row := 0; row < 3; row++ {
		_, err := s.ToggleWall(grid.Coord{Row: row, Col: 2})
		require.NoError(t, err)
	}
	assert.Equal(t, session.Regions{Count: 2, Largest: 6}, s.Regions())

	require.NoError(t, s.Start(algorithms.Dijkstra))
	opened, err := s.Breach()
	require.NoError(t, err)
	require.Len(t, opened, 1)
	assert.Equal(t, 2, opened[0].Col)
	assert.Equal(t, session.Regions{Count: 1, Largest: 13, Connected: true}, s.Regions())
	_, err = s.Step()
	assert.ErrorIs(t, err, session.ErrNoRun)

	require.NoError(t, s.Start(algorithms.Dijkstra))
	opened, err = s.Breach()
	require.NoError(t, err)
	assert.Empty(t, opened)
	_, err = s.Step()
	assert.NoError(t, err, "nothing opened, run kept")

	sum, err := s.Complete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Path Cost: 6.0 (Steps: 6)", sum.String())
}

func TestAnimate(t *testing.T) {
	s := unit(t, 4, 4)
	require.NoError(t, s.Start(algorithms.AStar))

	frames := 0
	sum, err := s.Animate(context.Background(), time.Millisecond, func(done bool) error {
		frames++
		if !done {
			assert.Equal(t, "Searching...", s.Summary().String())
		}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, sum.Found)
	assert.Positive(t, frames)
	assert.Equal(t, 6, sum.Steps)
}

func TestAnimate_Stops(t *testing.T) {
	s := unit(t, 10, 10)
	_, err := s.Animate(context.Background(), 0, nil)
	assert.ErrorIs(t, err, session.ErrBadInterval)

	_, err = s.Animate(context.Background(), time.Millisecond, nil)
	assert.ErrorIs(t, err, session.ErrNoRun)

	require.NoError(t, s.Start(algorithms.BFS))
	stop := errors.New("stop")
	frames := 0
	sum, err := s.Animate(context.Background(), time.Millisecond, func(bool) error {
		frames++
		if frames == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, frames)
	assert.False(t, sum.Finished)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Animate(ctx, time.Hour, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_ConcurrentUse(t *testing.T) {
	s := unit(t, 20, 20)
	require.NoError(t, s.Start(algorithms.Dijkstra))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.Step()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.Snapshot()
				_ = s.Summary()
			}
		}()
	}
	wg.Wait()

	sum, err := s.Complete(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Found)
}

func TestSummary_String(t *testing.T) {
	cases := []struct {
		sum  session.Summary
		want string
	}{
		{session.Summary{}, "-"},
		{session.Summary{Algorithm: "BFS"}, "Searching..."},
		{session.Summary{Algorithm: "BFS", Finished: true}, "No path found!"},
		{session.Summary{Algorithm: "A*", Finished: true, Found: true, Cost: 12, Steps: 5}, "Path Cost: 12.0 (Steps: 5)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.sum.String())
	}
}

func TestSummary_NoPath(t *testing.T) {
	s := unit(t, 3, 3)
	s.SetEndpoints("0,0", "2,2")
	_, err := s.ToggleWall(grid.Coord{Row: 1, Col: 2})
	require.NoError(t, err)
	_, err = s.ToggleWall(grid.Coord{Row: 2, Col: 1})
	require.NoError(t, err)

	require.NoError(t, s.Start(algorithms.BFS))
	sum, err := s.Complete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No path found!", sum.String())
	assert.Nil(t, s.Path())
}

func TestParsePreset(t *testing.T) {
	for _, p := range session.Presets() {
		got, err := session.ParsePreset(p.Name)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := session.ParsePreset(" XL ")
	require.NoError(t, err)
	assert.Equal(t, session.ExtraLarge, got)
	assert.Equal(t, "small (20×30)", session.Small.String())

	_, err = session.ParsePreset("huge")
	assert.ErrorIs(t, err, session.ErrUnknownPreset)
}

func TestDefaultEndpoints_SmallGrid(t *testing.T) {
	start, goal := session.DefaultEndpoints(3, 40)
	assert.Equal(t, grid.Coord{}, start)
	assert.Equal(t, grid.Coord{Row: 2, Col: 10}, goal)
}

func TestManager(t *testing.T) {
	m := session.NewManager(session.Config{Rows: 5, Cols: 5, Logger: quiet})

	a, err := m.Create(session.Config{})
	require.NoError(t, err)
	b, err := m.Create(session.Config{Rows: 8, Cols: 3, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	rows, cols := a.Size()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
	rows, cols = b.Size()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 3, cols)

	got, err := m.Get(b.ID())
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.ElementsMatch(t, []uuid.UUID{a.ID(), b.ID()}, m.List())

	require.NoError(t, m.Delete(a.ID()))
	_, err = m.Get(a.ID())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(a.ID()), session.ErrSessionNotFound)
	assert.Equal(t, []uuid.UUID{b.ID()}, m.List())

	_, err = m.Create(session.Config{Rows: -2})
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
	assert.Equal(t, 1, m.Len())
}

func TestManager_ConcurrentCreate(t *testing.T) {
	m := session.NewManager(session.Config{Rows: 3, Cols: 3, Logger: quiet})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := m.Create(session.Config{})
			if assert.NoError(t, err) {
				_, err = m.Get(s.ID())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, m.List(), 16)
}
