package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// ExampleSearcher_Step walks a BFS one step at a time around a wall,
// printing the cell taken off the queue at each step.
func ExampleSearcher_Step() {
	g, start, goal, _ := grid.FromLayout(`
		S#G
		...
	`, grid.WithSeed(1))

	s := bfs.New(search.WithOnExpand(func(c grid.Coord) {
		fmt.Println("expand", c)
	}))
	_ = s.Init(g, start, goal)
	for !s.Step() {
	}

	fmt.Println("found:", s.HasPath())
	fmt.Println("path:", s.Path())
	// Output:
	// expand 0,0
	// expand 1,0
	// expand 1,1
	// expand 1,2
	// found: true
	// path: [0,0 1,0 1,1 1,2 0,2]
}
