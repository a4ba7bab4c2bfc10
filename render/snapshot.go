package render

import "github.com/katalvlaran/pathgrid/grid"

// View is a JSON-friendly picture of a grid and its search state.
type View struct {
	Rows   int        `json:"rows"`
	Cols   int        `json:"cols"`
	Start  grid.Coord `json:"start"`
	Goal   grid.Coord `json:"goal"`
	Cells  []string   `json:"cells"`
	Open   int        `json:"open"`
	Closed int        `json:"closed"`
	Walls  int        `json:"walls"`
}

// Snapshot captures g as a View.
func Snapshot(g *grid.Grid, start, goal grid.Coord) View {
	v := View{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Start: start,
		Goal:  goal,
		Cells: Rows(g, start, goal),
	}
	g.Each(func(c *grid.Cell) {
		switch {
		case c.IsWall():
			v.Walls++
		case c.InClosedSet():
			v.Closed++
		case c.InOpenSet():
			v.Open++
		}
	})

	return v
}
