package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/grid"
)

// lattice steps: two cells at a time so a wall cell sits between rooms.
var steps = [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Wilson turns g into a perfect maze. Rooms sit on even coordinates; the
// cell between two adjacent rooms is a passage when the rooms are linked.
// Everything else is wall. The result is a uniform spanning tree over the
// rooms, built by loop-erased random walks that each end on the tree.
//
// Complexity: expected O((R×C)·log(R×C)) steps; worst case unbounded but
// finite with probability 1.
func Wilson(g *grid.Grid, rng *rand.Rand) {
	g.ClearTerrain()
	g.Each(func(c *grid.Cell) { c.SetWall(true) })

	var rooms []grid.Coord
	for r := 0; r < g.Rows(); r += 2 {
		for c := 0; c < g.Cols(); c += 2 {
			rooms = append(rooms, grid.Coord{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(rooms), func(i, j int) { rooms[i], rooms[j] = rooms[j], rooms[i] })

	tree := mapset.New[grid.Coord]()
	tree.Put(rooms[0])
	g.At(rooms[0]).SetWall(false)

	// exit records the last direction taken out of each room on the
	// current walk; overwriting it erases loops.
	exit := make(map[grid.Coord]int)
	for _, origin := range rooms[1:] {
		if tree.Has(origin) {
			continue
		}
		for cur := origin; !tree.Has(cur); {
			d := randomStep(g, cur, rng)
			exit[cur] = d
			cur = grid.Coord{Row: cur.Row + steps[d][0], Col: cur.Col + steps[d][1]}
		}
		for cur := origin; !tree.Has(cur); {
			d := exit[cur]
			next := grid.Coord{Row: cur.Row + steps[d][0], Col: cur.Col + steps[d][1]}
			g.At(cur).SetWall(false)
			g.At(grid.Coord{Row: cur.Row + steps[d][0]/2, Col: cur.Col + steps[d][1]/2}).SetWall(false)
			tree.Put(cur)
			cur = next
		}
	}
	g.RebuildEdges()
}

// randomStep picks a lattice direction from c that stays in bounds.
// A 1×1 lattice has none; callers never walk from the only room.
func randomStep(g *grid.Grid, c grid.Coord, rng *rand.Rand) int {
	var ok [4]int
	n := 0
	for d, s := range steps {
		if g.InBounds(c.Row+s[0], c.Col+s[1]) {
			ok[n] = d
			n++
		}
	}

	return ok[rng.Intn(n)]
}
