// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node-level queries.
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node if missing and applies opts to it.
//
// Implementation:
//   - Stage 1: Reject the empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, fetch or allocate the node.
//   - Stage 3: Apply options; WithCoord overwrites any previous position.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing node keeps its adjacency untouched.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.ensureNode(id)
	for _, opt := range opts {
		opt(n)
	}

	return nil
}

// HasNode reports whether the node exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Node returns a snapshot of the node with the given ID.
//
// The returned value owns a private copy of the adjacency, so mutating the
// Graph afterwards does not affect it and vice versa.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	cp := *n
	cp.neighbors = make(map[string]float64, len(n.neighbors))
	for to, w := range n.neighbors {
		cp.neighbors[to] = w
	}

	return cp, true
}

// Coord returns the position of node id and whether it has one.
// Returns ErrNodeNotFound when id is absent.
func (g *Graph) Coord(id string) (Coord, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Coord{}, false, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.coord, n.located, nil
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// ensureNode returns the node for id, creating an unlocated one if needed.
// Caller must hold g.mu for writing.
func (g *Graph) ensureNode(id string) *Node {
	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id, neighbors: make(map[string]float64)}
		g.nodes[id] = n
	}

	return n
}
