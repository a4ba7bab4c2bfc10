package maze

import (
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// Breach makes to reachable from from by converting the fewest possible
// wall cells into Normal ground, and returns the cells it converted in
// route order. Nothing changes when the two are already connected.
//
// Behaviour:
//  1. 0-1 BFS from from over 4-neighbours: entering an open cell costs 0,
//     entering a wall costs 1.
//  2. Stop when to is settled; walk predecessors back to from.
//  3. Unwall every wall cell on that route and rebuild edges once.
//
// Complexity: O(R×C) time and memory.
func Breach(g *grid.Grid, from, to grid.Coord) ([]grid.Coord, error) {
	if !g.Contains(from) {
		return nil, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, from)
	}
	if !g.Contains(to) {
		return nil, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, to)
	}

	n := g.Size()
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}
	cost := func(i int) int {
		if g.At(g.Coordinate(i)).IsWall() {
			return 1
		}
		return 0
	}

	src, dst := g.Index(from), g.Index(to)
	dist[src] = cost(src)
	dq := list.New()
	dq.PushFront(src)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == dst {
			break
		}
		for _, nb := range g.Neighbors(g.Coordinate(u)) {
			v := g.Index(nb)
			step := cost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	var converted []grid.Coord
	for at := dst; at >= 0; at = prev[at] {
		if c := g.At(g.Coordinate(at)); c.IsWall() {
			converted = append(converted, c.Coord())
		}
	}
	if len(converted) == 0 {
		return nil, nil
	}
	for i, j := 0, len(converted)-1; i < j; i, j = i+1, j-1 {
		converted[i], converted[j] = converted[j], converted[i]
	}
	for _, c := range converted {
		g.At(c).SetWall(false)
	}
	g.RebuildEdges()

	return converted, nil
}
