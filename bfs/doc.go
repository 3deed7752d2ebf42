// Package bfs provides breadth-first point-to-point search over a core.Graph.
//
// Overview:
//
//   - Standard queue-based level traversal from the start node.
//   - A node is marked visited when it is enqueued, never when dequeued, so it
//     is queued at most once.
//   - The search stops the moment the end node is dequeued.
//
// Distance semantics:
//
//	BFS does not minimise weight. Each node's distance is recorded once, at
//	discovery, as distance(parent) + weight(parent→node). Result.Distance is
//	therefore the weighted cost of the hop-minimal path BFS happened to find,
//	which can be larger than the cheapest weighted path:
//
//	    A ──1──> B ──2──> C
//	    └────────4───────^
//
//	BFS(A, C) returns Path [A C] with Distance 4, while Dijkstra returns
//	[A B C] with Distance 3.
//
// Determinism:
//
//   - Neighbors are discovered in ascending ID order.
//   - VisitedOrder is the exact dequeue order; nodes still queued when the end
//     node is reached are not included.
//
// Complexity:
//
//   - Time:  O(V + E·log d) where d is the largest out-degree.
//   - Space: O(V).
package bfs
