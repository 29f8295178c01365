package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleAStar routes around a wall segment on a 4×4 map.
func ExampleAStar() {
	g, err := grid.New([][]int{
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tr := search.AStar(g, grid.At(0, 0), grid.At(3, 0))
	fmt.Println(tr.Path)
	fmt.Println(tr.Stats())
	// Output:
	// [(0,0) (0,1) (0,2) (0,3) (1,3) (2,3) (2,2) (2,1) (2,0) (3,0)]
	// nodes_visited=10 path_length=10
}

// ExampleBFS contrasts the trace-only default with WithPath.
func ExampleBFS() {
	g, _ := grid.New([][]int{
		{0, 0},
		{0, 0},
	})
	plain := search.BFS(g, grid.At(0, 0), grid.At(1, 1))
	withPath := search.BFS(g, grid.At(0, 0), grid.At(1, 1), search.WithPath())
	fmt.Println(plain.Steps, plain.Found())
	fmt.Println(withPath.Path)
	// Output:
	// [(0,0) (1,0) (0,1) (1,1)] false
	// [(0,0) (1,0) (1,1)]
}
