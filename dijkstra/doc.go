// Package dijkstra implements Dijkstra's label-setting shortest-path search
// between two nodes of a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - All distances start at +Inf except the source (0).
//   - Each round selects the unfinalized node with the smallest tentative
//     distance. If none is finite the search ends (the rest is unreachable);
//     if it is the end node, it is recorded and the search ends successfully.
//   - Otherwise every unfinalized neighbor v is relaxed: when
//     dist[u] + w(u,v) < dist[v], v gets the new distance and u as predecessor.
//
// Once a node is finalized its distance is minimal; this holds because
// core.Graph never stores a negative weight.
//
// Frontier selection:
//
//   - search.FrontierLinear (default): scan all candidates each round, O(V²) total.
//   - search.FrontierHeap: indexed binary heap with decrease-key, O((V+E) log V).
//
// Both break ties between equal distances by ascending node ID, so
// Result.VisitedOrder is identical for either choice and stable across runs.
//
// Example:
//
//	res, err := dijkstra.FindPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Distance)
package dijkstra
