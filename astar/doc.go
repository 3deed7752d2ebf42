// Package astar implements A* point-to-point search over a core.Graph using
// node coordinates to estimate the remaining distance.
//
// Overview:
//
//   - gScore(n): cost of the best known path start → n.
//   - fScore(n): gScore(n) + heuristic(n, end).
//   - Each round selects the open node with the lowest fScore (ties: lowest
//     ID). Selecting the end node finishes the search; otherwise the node is
//     closed and each neighbor that is not closed is relaxed.
//   - A neighbor not yet open is admitted; an open neighbor is updated only
//     when the tentative gScore is strictly smaller.
//
// Heuristics:
//
//	Euclidean (default)  sqrt((Δlat)² + (Δlng)²) × 111000
//	Haversine            great-circle meters, for road graphs weighted the same way
//	Zero                 no guidance; A* degenerates to Dijkstra
//
// A node without coordinates contributes an estimate of 0, which keeps any
// admissible heuristic admissible.
//
// Optimality:
//
//	Result.Distance is gScore(end). It equals Dijkstra's distance when the
//	heuristic is admissible, i.e. never larger than the true remaining cost.
//	pathkit does not verify this: with coordinates far apart relative to the
//	edge weights, A* may return a costlier path than Dijkstra.
//
// Closed nodes are never reopened, so with an admissible but inconsistent
// heuristic the result may also be suboptimal.
package astar
