// Package pathkit is a pluggable pathfinding kernel: build a weighted graph
// in memory, pick an engine, and get back the path, its weight and the order
// in which nodes were explored.
//
// Engines share one contract (search.Result / search.Finder):
//
//	bfs/       - fewest hops; Distance is the weight along that route
//	dijkstra/  - minimum total weight (non-negative weights)
//	astar/     - minimum total weight guided by node coordinates
//
// Supporting packages:
//
//	core/      - thread-safe Graph of located nodes and weighted arcs
//	search/    - Result, Finder, options, prechecks and path reconstruction
//	geo/       - Euclidean/Haversine distances and nearest-node snapping
//	grid/      - 2D cell maps to located graphs
//	builder/   - deterministic graph fixtures (paths, ladders, random meshes)
//	compare/   - run several engines concurrently on one graph
//	instrument/ - Prometheus metrics, OpenTelemetry spans and slog logging
//
// Quick example:
//
//	    A──1──B
//	     \    │
//	      4   2
//	       \  │
//	         C
//
//	BFS      A→C     (4)  one hop
//	Dijkstra A→B→C   (3)
//	A*       A→B→C   (3)  with admissible coordinates
//
// Unreachable targets are not errors: Path is empty and Distance is +Inf.
package pathkit
