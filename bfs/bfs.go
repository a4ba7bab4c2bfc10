package bfs

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// Searcher is a steppable breadth-first search. The zero value is not
// usable; call New.
type Searcher struct {
	search.Run
	queue *queue.Queue[grid.Coord]
}

// New returns an unbound BFS searcher. Hooks come from search options;
// WithIndexedFrontier has no effect.
func New(opts ...search.Option) *Searcher {
	return &Searcher{Run: search.NewRun(opts...)}
}

// Init binds s to g, clears the grid's search state and enqueues start.
// When start equals goal the run is already finished with path [start].
func (s *Searcher) Init(g *grid.Grid, start, goal grid.Coord) error {
	s.queue = nil
	if err := s.Bind(g, start, goal); err != nil {
		return err
	}
	s.queue = queue.New[grid.Coord]()

	c := g.At(start)
	c.SetDistance(0)
	c.SetInOpenSet(true)
	s.queue.Enqueue(start)
	if start == goal {
		s.Finish(true)
	}

	return nil
}

// Step dequeues one cell, expands it and discovers its neighbours in
// adjacency order. Discovering the goal ends the run with a path; an empty
// queue ends it without one.
// Complexity: O(1) amortised per call, O(R×C) over a run.
func (s *Searcher) Step() bool {
	if !s.Active() {
		return true
	}
	if s.queue.Empty() {
		s.Finish(false)
		return true
	}

	g := s.Grid()
	cur := g.At(s.queue.Dequeue())
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
		s.queue.Enqueue(e.To)
	}

	return false
}
