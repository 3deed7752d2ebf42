// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: The Result contract, the Finder interface, shared Options and sentinel errors.

package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathkit/core"
)

// Sentinel errors shared by every engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to an engine.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrBrokenPath indicates that two consecutive path nodes are not joined by an edge.
	ErrBrokenPath = errors.New("search: path is not a walk in the graph")
)

// Result is the outcome of one FindPath call.
//
// VisitedOrder lists node IDs in the order the engine finalized or expanded
// them, without duplicates. Path runs from start to end inclusive and is empty
// (never nil) when the end node is unreachable. Distance is the accumulated
// weight along Path, or +Inf when the end node was never reached.
type Result struct {
	VisitedOrder []string
	Path         []string
	Distance     float64
}

// Found reports whether a path to the end node was discovered.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Expanded returns how many nodes the engine visited.
func (r *Result) Expanded() int { return len(r.VisitedOrder) }

// Hops returns the number of edges along Path, or -1 if no path was found.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return -1
	}

	return len(r.Path) - 1
}

// String renders the result as "A→B→C (3) visited=4" or "unreachable visited=n".
func (r *Result) String() string {
	if !r.Found() {
		return fmt.Sprintf("unreachable visited=%d", len(r.VisitedOrder))
	}

	return fmt.Sprintf("%s (%g) visited=%d", strings.Join(r.Path, "→"), r.Distance, len(r.VisitedOrder))
}

// unreachable builds the canonical "end never reached" result.
func unreachable(visited []string) *Result {
	return &Result{VisitedOrder: visited, Path: []string{}, Distance: math.Inf(1)}
}

// Finder is implemented by every engine.
type Finder interface {
	FindPath(g *core.Graph, startID, endID string) (*Result, error)
}

// FinderFunc adapts a plain function to Finder.
type FinderFunc func(g *core.Graph, startID, endID string) (*Result, error)

// FindPath calls f(g, startID, endID).
func (f FinderFunc) FindPath(g *core.Graph, startID, endID string) (*Result, error) {
	return f(g, startID, endID)
}

// FrontierKind selects how Dijkstra and A* pick the next node to settle.
type FrontierKind int

const (
	// FrontierLinear scans every frontier member each round: O(V) per pick.
	FrontierLinear FrontierKind = iota

	// FrontierHeap keeps an indexed binary heap: O(log V) per pick and update.
	FrontierHeap
)

// String returns "linear" or "heap".
func (k FrontierKind) String() string {
	switch k {
	case FrontierLinear:
		return "linear"
	case FrontierHeap:
		return "heap"
	default:
		return fmt.Sprintf("FrontierKind(%d)", int(k))
	}
}

// Options holds the knobs common to all engines.
type Options struct {
	// OnVisit observes each node ID as it is appended to Result.VisitedOrder.
	OnVisit func(id string)

	// Frontier selects the Dijkstra/A* selection structure. BFS ignores it.
	Frontier FrontierKind
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnVisit and the linear frontier.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(string) {},
		Frontier: FrontierLinear,
	}
}

// Apply builds Options from DefaultOptions and opts, left to right.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOnVisit registers a visit observer. A nil fn is ignored.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFrontier selects the frontier structure used by Dijkstra and A*.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) { o.Frontier = kind }
}
