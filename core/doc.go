// Package core provides the in-memory Graph Model shared by every pathkit
// search engine: nodes with identity, an optional geographic coordinate and a
// weighted adjacency of directed edges.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Directed edges via AddNeighbor; symmetric links via AddEdge.
//   - Real-valued, finite, non-negative weights (ErrInvalidWeight otherwise).
//   - Optional node coordinates (WithCoord) consumed only by heuristics.
//   - Deterministic enumeration: Nodes() and Neighbors() return sorted results.
//   - One sync.RWMutex guards the node catalog and every adjacency map.
//
// Configuration Options (GraphOption):
//
//	– WithStrictNodes()
//	    AddNeighbor/AddEdge reject endpoints not registered via AddNode.
//	    Without it, missing endpoints are created without coordinates.
//
//	– WithCapacity(n)
//	    Pre-sizes the node catalog.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, opts ...NodeOption) error          // O(1)
//	HasNode(id string) bool                               // O(1)
//	Node(id string) (Node, bool)                          // O(d) snapshot copy
//	Coord(id string) (Coord, bool, error)                 // O(1)
//
//	// Edge lifecycle
//	AddNeighbor(from, to string, w float64) error         // O(1)
//	AddEdge(a, b string, w float64) error                 // O(1), both directions
//	RemoveNeighbor(from, to string) error                 // O(1)
//
//	// Query
//	Weight(from, to string) (float64, bool)               // O(1)
//	Neighbors(id string) ([]Arc, error)                   // O(d·log d), sorted
//	Nodes() []string                                      // O(V·log V), sorted
//	NodeCount() int                                       // O(1)
//	EdgeCount() int                                       // O(V)
//
// Invariant: every neighbor key in any adjacency refers to a node of the same
// Graph. AddNeighbor either creates the missing endpoint or, in strict mode,
// refuses the edge, so engines never meet a dangling reference mid-search.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested directed edge does not exist.
//	ErrInvalidWeight - weight is negative, NaN or infinite.
package core
