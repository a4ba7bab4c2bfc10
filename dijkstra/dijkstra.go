package dijkstra

import (
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Searcher is a steppable Dijkstra search. Tentative costs live in the
// cells' Distance field. Use New.
type Searcher struct {
	search.Run
	open search.Frontier
}

// New returns an unbound Dijkstra searcher. By default the open set is a
// linear scan over insertion order; search.WithIndexedFrontier selects a
// binary heap with the same extraction order.
func New(opts ...search.Option) *Searcher {
	return &Searcher{Run: search.NewRun(opts...)}
}

// Init binds s to g, resets every cell's distance to +Inf, and opens start
// at distance 0.
func (s *Searcher) Init(g *grid.Grid, start, goal grid.Coord) error {
	s.open = nil
	if err := s.Bind(g, start, goal); err != nil {
		return err
	}
	s.open = search.NewFrontier(s.Options(), g.Size()/4+1)

	c := g.At(start)
	c.SetDistance(0)
	c.SetInOpenSet(true)
	s.open.Push(start, 0)
	if start == goal {
		s.Finish(true)
	}

	return nil
}

// Step extracts the open cell with the smallest distance (earliest inserted
// on ties) and closes it. Extracting the goal ends the run with a path.
// Otherwise every outgoing edge to a non-wall, non-closed cell is relaxed:
// a strictly shorter distance replaces the neighbour's distance and
// predecessor, and opens it if it was not open yet.
//
// Complexity per call: O(|open| + 4) with the scan frontier,
// O(log|open|) with the indexed one.
func (s *Searcher) Step() bool {
	if !s.Active() {
		return true
	}
	if s.open.Len() == 0 {
		s.Finish(false)
		return true
	}

	g := s.Grid()
	cur := g.At(s.open.Pop())
	s.Expand(cur)
	if cur.Coord() == s.Goal() {
		s.Finish(true)
		return true
	}

	for _, e := range cur.Edges() {
		nb := g.At(e.To)
		if nb.IsWall() || nb.InClosedSet() {
			continue
		}
		d := cur.Distance() + e.Weight
		if !(d < nb.Distance()) {
			continue
		}
		nb.SetDistance(d)
		nb.SetParent(cur.Coord())
		s.Discover(cur.Coord(), e.To)
		if nb.InOpenSet() {
			s.open.Update(e.To, d)
			continue
		}
		nb.SetInOpenSet(true)
		s.open.Push(e.To, d)
	}

	return false
}
