package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid"
)

// ExampleGrid_ToGraph routes around a wall on a 3×3 map.
func ExampleGrid_ToGraph() {
	// 1) Zeros are walls.
	cells := [][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}
	gr, err := grid.New(cells, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Convert and search from the top-left to the bottom-left corner.
	res, _ := dijkstra.FindPath(gr.ToGraph(), gr.ID(0, 0), gr.ID(0, 2))
	fmt.Println(res.Path, res.Hops())
	// Output: [0,0 1,0 2,0 2,1 2,2 1,2 0,2] 6
}
