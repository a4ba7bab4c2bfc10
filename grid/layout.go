package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonRectangular indicates layout rows of differing lengths.
var ErrNonRectangular = errors.New("grid: all layout rows must have the same length")

// Layout glyphs understood by FromLayout.
const (
	GlyphNormal   = '.'
	GlyphSand     = ':'
	GlyphWater    = '~'
	GlyphMountain = '^'
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
)

// FromLayout builds a grid from an ASCII picture, one line per row:
//
//	S..#
//	.#.:
//	...G
//
// Surrounding whitespace and blank lines are ignored. S and G mark the
// returned start and goal on Normal ground; when absent they default to the
// top-left and bottom-right corners. Options apply as for New, and edges are
// drawn after the terrain is placed.
func FromLayout(layout string, opts ...Option) (g *Grid, start, goal Coord, err error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, Coord{}, Coord{}, fmt.Errorf("%w: empty layout", ErrBadDimensions)
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, Coord{}, Coord{}, ErrNonRectangular
		}
	}

	g, err = New(len(lines), cols, opts...)
	if err != nil {
		return nil, Coord{}, Coord{}, err
	}
	start, goal = Coord{}, Coord{Row: len(lines) - 1, Col: cols - 1}
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			cell := &g.cells[g.index(r, c)]
			switch line[c] {
			case GlyphNormal:
			case GlyphSand:
				cell.SetTerrain(Sand)
			case GlyphWater:
				cell.SetTerrain(Water)
			case GlyphMountain:
				cell.SetTerrain(Mountain)
			case GlyphWall:
				cell.SetWall(true)
			case GlyphStart:
				start = Coord{Row: r, Col: c}
			case GlyphGoal:
				goal = Coord{Row: r, Col: c}
			default:
				return nil, Coord{}, Coord{}, fmt.Errorf("%w: glyph %q at %d,%d", ErrUnknownTerrain, line[c], r, c)
			}
		}
	}
	g.RebuildEdges()

	return g, start, goal, nil
}
