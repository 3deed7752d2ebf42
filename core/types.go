// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Coord, Arc and Graph declarations, sentinel errors, options and
//       the NewGraph constructor.
// Policy:
//   - No algorithms here; search engines live in bfs/, dijkstra/ and astar/.
//   - Locking model: a single sync.RWMutex guards the node catalog and every
//     adjacency map reachable from it.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a directed edge that does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be finite and non-negative")
)

// Coord is a 2D geographic position in degrees.
type Coord struct {
	Lat float64
	Lng float64
}

// Node is a vertex of the Graph.
//
// ID uniquely identifies the node within its Graph. The coordinate is optional
// and only consulted by geometric heuristics. The adjacency maps neighbor IDs
// to directed edge weights; a neighbor entry need not be reciprocal.
type Node struct {
	// ID is the unique identifier of this node.
	ID string

	coord     Coord
	located   bool               // coord is meaningful
	neighbors map[string]float64 // neighbor ID → weight
}

// Coord returns the node position and whether one was assigned.
func (n Node) Coord() (Coord, bool) { return n.coord, n.located }

// Weight returns the weight of the edge n→to and whether it exists.
func (n Node) Weight(to string) (float64, bool) {
	w, ok := n.neighbors[to]
	return w, ok
}

// Degree returns the number of outgoing edges.
func (n Node) Degree() int { return len(n.neighbors) }

// Arc is one outgoing edge as seen from its source node.
type Arc struct {
	To     string
	Weight float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithStrictNodes makes AddNeighbor and AddEdge reject endpoints that were not
// registered with AddNode beforehand (ErrNodeNotFound). By default missing
// endpoints are created without coordinates.
func WithStrictNodes() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// WithCapacity pre-sizes the node catalog for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[string]*Node, n)
		}
	}
}

// NodeOption configures a node on AddNode.
type NodeOption func(n *Node)

// WithCoord assigns the node position (latitude, longitude in degrees).
func WithCoord(lat, lng float64) NodeOption {
	return func(n *Node) {
		n.coord = Coord{Lat: lat, Lng: lng}
		n.located = true
	}
}

// Graph is an in-memory mapping from node ID to Node.
//
// It is safe for concurrent use: mutations take the write lock and every query
// takes the read lock. Search engines only ever read, so one Graph may back
// any number of concurrent searches as long as nobody mutates it meanwhile.
type Graph struct {
	mu sync.RWMutex // guards nodes and every Node.neighbors map

	strict bool // reject unknown edge endpoints

	nodes map[string]*Node
}

// NewGraph creates an empty Graph.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{nodes: make(map[string]*Node)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
