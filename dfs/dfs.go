package dfs

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Searcher is a steppable depth-first search. Use New.
type Searcher struct {
	search.Run
	stack *stack.Stack[grid.Coord]
}

// New returns an unbound DFS searcher.
func New(opts ...search.Option) *Searcher {
	return &Searcher{Run: search.NewRun(opts...)}
}

// Init binds s to g, clears the grid's search state and pushes start.
func (s *Searcher) Init(g *grid.Grid, start, goal grid.Coord) error {
	s.stack = nil
	if err := s.Bind(g, start, goal); err != nil {
		return err
	}
	s.stack = stack.New[grid.Coord]()

	c := g.At(start)
	c.SetDistance(0)
	c.SetInOpenSet(true)
	s.stack.Push(start)
	if start == goal {
		s.Finish(true)
	}

	return nil
}

// Step pops the most recently discovered cell, expands it and pushes its
// undiscovered neighbours in adjacency order, so the last of them (down,
// when open) is explored first.
func (s *Searcher) Step() bool {
	if !s.Active() {
		return true
	}
	if s.stack.Size() == 0 {
		s.Finish(false)
		return true
	}

	g := s.Grid()
	cur := g.At(s.stack.Pop())
	s.Expand(cur)
	if cur.Coord() == s.Goal() {
		s.Finish(true)
		return true
	}

	for _, e := range cur.Edges() {
		nb := g.At(e.To)
		if nb.IsWall() || nb.Discovered() {
			continue
		}
		nb.SetParent(cur.Coord())
		nb.SetDistance(cur.Distance() + 1)
		nb.SetInOpenSet(true)
		s.Discover(cur.Coord(), e.To)
		if e.To == s.Goal() {
			s.Finish(true)
			return true
		}
		s.stack.Push(e.To)
	}

	return false
}
