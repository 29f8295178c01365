package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleMap_Neighbors lists the open neighbors of the centre of a 3×3 map
// whose left cell is a wall.
func ExampleMap_Neighbors() {
	m, err := grid.New([][]int{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for n := range m.OpenNeighbors(grid.At(1, 1)) {
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output:
	// (0,1) (2,1) (1,2)
}
