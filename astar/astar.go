package astar

import (
	"math"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Heuristic estimates the remaining cost from c to goal. It must never
// overestimate, and must not drop by more than an edge's weight across
// that edge, for the closed-set policy to stay optimal.
type Heuristic func(c, goal grid.Coord) float64

// Searcher is a steppable A* search. The g and f scores are owned by the
// searcher; each cell's Distance mirrors its g score for display. Use New.
type Searcher struct {
	search.Run
	h Heuristic
	// scaled marks the built-in Manhattan heuristic, which is multiplied
	// by min(1, lightest edge) so it stays admissible on sub-unit weights.
	scaled bool
	scale  float64
	open   search.Frontier
	gs     []float64
	fs     []float64
}

// New returns an unbound A* searcher using the Manhattan heuristic. Init
// scales it by min(1, lightest edge weight) of the bound grid, so it stays
// admissible and consistent for any positive weights; grids whose edges all
// weigh at least 1 use plain Manhattan distance.
func New(opts ...search.Option) *Searcher {
	s := NewWithHeuristic(grid.Manhattan, opts...)
	s.scaled = true

	return s
}

// NewWithHeuristic returns an unbound A* searcher using h as given. A nil h
// falls back to unscaled Manhattan distance.
func NewWithHeuristic(h Heuristic, opts ...search.Option) *Searcher {
	if h == nil {
		h = grid.Manhattan
	}

	return &Searcher{Run: search.NewRun(opts...), h: h, scale: 1}
}

// Init binds s to g, sets g = f = +Inf everywhere, and opens start with
// g = 0 and f = h(start).
func (s *Searcher) Init(g *grid.Grid, start, goal grid.Coord) error {
	s.open = nil
	if err := s.Bind(g, start, goal); err != nil {
		return err
	}
	n := g.Size()
	if cap(s.gs) < n {
		s.gs, s.fs = make([]float64, n), make([]float64, n)
	}
	s.gs, s.fs = s.gs[:n], s.fs[:n]
	for i := range s.gs {
		s.gs[i], s.fs[i] = math.Inf(1), math.Inf(1)
	}
	s.open = search.NewFrontier(s.Options(), n/4+1)
	s.scale = 1
	if s.scaled {
		s.scale = math.Min(1, g.MinEdgeWeight())
	}

	i := g.Index(start)
	s.gs[i], s.fs[i] = 0, s.estimate(start)
	c := g.At(start)
	c.SetDistance(0)
	c.SetInOpenSet(true)
	s.open.Push(start, s.fs[i])
	if start == goal {
		s.Finish(true)
	}

	return nil
}

// Step extracts the open cell with the smallest f (earliest inserted on
// ties). If it is the goal the run ends with a path. Otherwise it is closed
// and its edges relaxed; closed cells are never reopened.
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

	gc := s.gs[g.Index(cur.Coord())]
	for _, e := range cur.Edges() {
		nb := g.At(e.To)
		if nb.IsWall() || nb.InClosedSet() {
			continue
		}
		j := g.Index(e.To)
		tentative := gc + e.Weight
		if !(tentative < s.gs[j]) {
			continue
		}
		s.gs[j] = tentative
		s.fs[j] = tentative + s.estimate(e.To)
		nb.SetDistance(tentative)
		nb.SetParent(cur.Coord())
		s.Discover(cur.Coord(), e.To)
		if nb.InOpenSet() {
			s.open.Update(e.To, s.fs[j])
			continue
		}
		nb.SetInOpenSet(true)
		s.open.Push(e.To, s.fs[j])
	}

	return false
}

func (s *Searcher) estimate(c grid.Coord) float64 {
	return s.scale * s.h(c, s.Goal())
}

// G returns the cost of the best known path from start to c (+Inf when
// unreached or unbound).
func (s *Searcher) G(c grid.Coord) float64 {
	if g := s.Grid(); g != nil && g.Contains(c) && len(s.gs) == g.Size() {
		return s.gs[g.Index(c)]
	}

	return math.Inf(1)
}

// F returns g(c) + h(c) for open and closed cells (+Inf otherwise).
func (s *Searcher) F(c grid.Coord) float64 {
	if g := s.Grid(); g != nil && g.Contains(c) && len(s.fs) == g.Size() {
		return s.fs[g.Index(c)]
	}

	return math.Inf(1)
}
