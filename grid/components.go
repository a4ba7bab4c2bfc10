package grid

import "github.com/zyedidia/generic/queue"

// Components finds the connected regions of non-wall cells, following
// edges in both directions so a region is what an undirected walk can
// reach. Each component is a slice of coordinates in discovery order;
// components appear in row-major order of their first cell.
//
// Time:   O(R×C).
// Memory: O(R×C) for labels and output.
func (g *Grid) Components() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i := range g.cells {
		if g.cells[i].wall || seen[i] {
			continue
		}
		q := queue.New[int]()
		q.Enqueue(i)
		seen[i] = true
		var comp []Coord

		for !q.Empty() {
			u := &g.cells[q.Dequeue()]
			comp = append(comp, u.Coord())
			for _, d := range neighborOffsets {
				r, c := u.row+d[0], u.col+d[1]
				if !g.InBounds(r, c) {
					continue
				}
				vi := g.index(r, c)
				v := &g.cells[vi]
				if seen[vi] || v.wall {
					continue
				}
				if _, out := u.EdgeTo(v.Coord()); !out {
					if _, in := v.EdgeTo(u.Coord()); !in {
						continue
					}
				}
				seen[vi] = true
				q.Enqueue(vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Reachable reports whether a directed walk along edges leads from a to b.
// Out-of-range coordinates are never reachable; a cell reaches itself.
func (g *Grid) Reachable(a, b Coord) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	start := g.Index(a)
	seen[start] = true
	q := queue.New[int]()
	q.Enqueue(start)
	for !q.Empty() {
		for _, e := range g.cells[q.Dequeue()].edges {
			if e.To == b {
				return true
			}
			vi := g.Index(e.To)
			if !seen[vi] {
				seen[vi] = true
				q.Enqueue(vi)
			}
		}
	}

	return false
}
