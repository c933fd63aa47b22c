package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleBFS shows the visit order on an open 3×3 grid.
// Neighbours are taken up, down, left, right, so layers appear by Manhattan distance.
func ExampleBFS() {
	g, _ := grid.New(3, 3)
	res, err := bfs.BFS(g, grid.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	order := make([]grid.Point, len(res.Order))
	for i, id := range res.Order {
		order[i] = g.Cell(id).Point()
	}
	fmt.Println(order)
	// Output:
	// [(0,0) (0,1) (1,0) (0,2) (1,1) (2,0) (1,2) (2,1) (2,2)]
}

// ExampleShortestSteps routes around a wall that leaves one gap on the right.
func ExampleShortestSteps() {
	o, x := grid.Open, grid.Obstacle
	g, _ := grid.FromKinds([][]grid.Kind{
		{o, o, o},
		{x, x, o},
		{o, o, o},
	})
	n, err := bfs.ShortestSteps(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 2})
	fmt.Println(n, err)
	// Output:
	// 6 <nil>
}
