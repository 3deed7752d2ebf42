// Package grid turns a 2D matrix of integer cells into a located core.Graph.
//
// Cells with value ≥ PassThreshold are passable and become nodes named "x,y";
// the rest are walls. Each cell sits at Origin + (y·Spacing, x·Spacing) in
// (lat, lng) degrees and edges carry the Euclidean distance between cell
// centers, which makes grids a convenient fixture for comparing BFS, Dijkstra
// and A* on the same map:
//
//	cells := [][]int{
//	    {1, 1, 1},
//	    {0, 0, 1},
//	    {1, 1, 1},
//	}
//	gr, _ := grid.New(cells, grid.DefaultOptions())
//	g := gr.ToGraph() // 7 nodes, "0,0" … "2,2"
//
// Components reports the connected regions, which tells up front whether two
// cells can reach each other.
package grid
