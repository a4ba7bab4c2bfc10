package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// Weights writes the edge-weight overlay. Each grid row becomes two lines:
// the cells with the weight of the edge to their right neighbour between
// them, then the weight of the edge to the neighbour below each cell.
// Missing edges (walls) leave a blank. Weights are directional; the
// reverse edges are not shown.
//
//	. 3 . 7 .
//	5   1   2
//	. 4 #   .
func Weights(w io.Writer, g *grid.Grid) error {
	label := func(from grid.Coord, dr, dc int) string {
		wt, ok := g.EdgeWeight(from, grid.Coord{Row: from.Row + dr, Col: from.Col + dc})
		if !ok {
			return ""
		}
		return strconv.FormatFloat(wt, 'f', -1, 64)
	}

	width := 1
	g.Each(func(c *grid.Cell) {
		for _, e := range c.Edges() {
			if n := len(strconv.FormatFloat(e.Weight, 'f', -1, 64)); n > width {
				width = n
			}
		}
	})
	pad := func(s string) string {
		return s + strings.Repeat(" ", width-len(s))
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		var cells, below strings.Builder
		for c := 0; c < g.Cols(); c++ {
			at := grid.Coord{Row: r, Col: c}
			glyph := Classify(g.At(at), grid.Coord{Row: -1}, grid.Coord{Row: -1})
			cells.WriteString(pad(string(glyph)))
			below.WriteString(pad(label(at, 1, 0)))
			if c+1 < g.Cols() {
				cells.WriteString(" " + pad(label(at, 0, 1)) + " ")
				below.WriteString(" " + pad("") + " ")
			}
		}
		bw.WriteString(strings.TrimRight(cells.String(), " "))
		bw.WriteByte('\n')
		if r+1 < g.Rows() {
			bw.WriteString(strings.TrimRight(below.String(), " "))
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
