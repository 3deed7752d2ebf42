// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Directed edge lifecycle (AddNeighbor/AddEdge/RemoveNeighbor) and
//       edge queries (Weight/Neighbors/EdgeCount).
// Determinism:
//   - Neighbors() returns arcs sorted by target ID ascending.
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNeighbor inserts or overwrites the weight of the directed edge nodeID→neighborID.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyNodeID) and weight (ErrInvalidWeight).
//   - Stage 2: Under the write lock, resolve both endpoints; in strict mode an
//     unknown endpoint yields ErrNodeNotFound, otherwise it is created unlocated.
//   - Stage 3: Store the weight in the source adjacency.
//
// Behavior highlights:
//   - No reciprocal entry is created; use AddEdge for symmetric links.
//   - Self-loops are accepted; searches never benefit from them.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNeighbor(nodeID, neighborID string, weight float64) error {
	if err := validateArc(nodeID, neighborID, weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpoints(nodeID, neighborID); err != nil {
		return err
	}
	g.link(nodeID, neighborID, weight)

	return nil
}

// AddEdge links a and b in both directions with the same weight.
// Both arcs are validated before either is stored, so a failed call leaves
// the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if err := validateArc(a, b, weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpoints(a, b); err != nil {
		return err
	}
	g.link(a, b, weight)
	g.link(b, a, weight)

	return nil
}

// RemoveNeighbor deletes the directed edge nodeID→neighborID.
// Both nodes stay in the graph. Returns ErrEdgeNotFound if the edge is absent.
func (g *Graph) RemoveNeighbor(nodeID, neighborID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[nodeID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}
	if _, ok = n.neighbors[neighborID]; !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, nodeID, neighborID)
	}
	delete(n.neighbors, neighborID)

	return nil
}

// Weight returns the weight of the directed edge from→to and whether it exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[from]
	if !ok {
		return 0, false
	}
	w, ok := n.neighbors[to]

	return w, ok
}

// Neighbors returns the outgoing arcs of id sorted by target ID.
//
// The slice is freshly allocated on every call; engines rely on the sorted
// order for reproducible discovery and tie-breaking.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity:
//   - Time O(d log d), Space O(d) where d = deg(id).
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	g.mu.RLock()
	n, ok := g.nodes[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	arcs := make([]Arc, 0, len(n.neighbors))
	for to, w := range n.neighbors {
		arcs = append(arcs, Arc{To: to, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })
	return arcs, nil
}

// EdgeCount returns the number of directed edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += len(n.neighbors)
	}

	return total
}

// validateArc checks IDs and weight without touching the graph.
func validateArc(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrInvalidWeight, from, to, weight)
	}

	return nil
}

// checkEndpoints enforces strict mode. Caller must hold g.mu for writing.
func (g *Graph) checkEndpoints(ids ...string) error {
	if !g.strict {
		return nil
	}
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	return nil
}

// link stores from→to, creating endpoints as needed. Caller must hold g.mu for writing.
func (g *Graph) link(from, to string, weight float64) {
	g.ensureNode(to)
	g.ensureNode(from).neighbors[to] = weight
}
