package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/core"
)

// ExampleFindPath shows that BFS keeps the first-discovered, hop-minimal path.
func ExampleFindPath() {
	// 1) A→B(1), A→C(4), B→C(2).
	g := core.NewGraph()
	_ = g.AddNeighbor("A", "B", 1)
	_ = g.AddNeighbor("A", "C", 4)
	_ = g.AddNeighbor("B", "C", 2)

	// 2) Search A→C.
	res, err := bfs.FindPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) C was reached in one hop from A; its weight is never revised.
	fmt.Println("path:", res.Path)
	fmt.Println("distance:", res.Distance)
	fmt.Println("visited:", res.VisitedOrder)
	// Output:
	// path: [A C]
	// distance: 4
	// visited: [A B C]
}
