package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathgrid/grid"
)

// DefaultDensity is the wall probability used by the random maze button.
const DefaultDensity = 0.3

var (
	// ErrBadDensity indicates a wall probability outside [0, 1].
	ErrBadDensity = errors.New("maze: density must be within [0, 1]")

	// ErrTooFewOpenCells indicates the grid has fewer than two open cells.
	ErrTooFewOpenCells = errors.New("maze: need at least two open cells")
)

// Scatter clears walls, terrain and search state, walls each cell with
// probability density, and rebuilds edges.
// Complexity: O(R×C).
func Scatter(g *grid.Grid, density float64, rng *rand.Rand) error {
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: got %g", ErrBadDensity, density)
	}
	g.ClearTerrain()
	g.Each(func(c *grid.Cell) {
		if rng.Float64() < density {
			c.SetWall(true)
		}
	})
	g.RebuildEdges()

	return nil
}

// Endpoints picks a uniformly random open start and a distinct open goal.
func Endpoints(g *grid.Grid, rng *rand.Rand) (start, goal grid.Coord, err error) {
	var open []grid.Coord
	g.Each(func(c *grid.Cell) {
		if !c.IsWall() {
			open = append(open, c.Coord())
		}
	})
	if len(open) < 2 {
		return grid.Coord{}, grid.Coord{}, fmt.Errorf("%w: %d open", ErrTooFewOpenCells, len(open))
	}
	i := rng.Intn(len(open))
	j := rng.Intn(len(open) - 1)
	if j >= i {
		j++
	}

	return open[i], open[j], nil
}
