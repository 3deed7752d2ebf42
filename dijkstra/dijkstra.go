// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/internal/frontier"
	"github.com/katalvlaran/pathkit/search"
)

// FindPath computes the minimum-weight path from startID to endID.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (search.ErrNilGraph).
//  2. startID and endID must be non-empty (core.ErrEmptyNodeID).
//  3. Both must exist in g (core.ErrNodeNotFound).
//
// Non-negative weights are guaranteed by core.Graph, which rejects anything
// else at construction time.
//
// Returns:
//   - Result.VisitedOrder: nodes in the order they were finalized, the end node
//     last when it is reached.
//   - Result.Path / Result.Distance: the cheapest path and its weight, or an
//     empty path and +Inf when endID is unreachable.
//
// Complexity:
//   - Time:  O(V²) with search.FrontierLinear, O((V + E) log V) with search.FrontierHeap.
//   - Space: O(V).
func FindPath(g *core.Graph, startID, endID string, opts ...search.Option) (*search.Result, error) {
	if err := search.Precheck(g, startID, endID); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	cfg := search.Apply(opts...)
	r := newRunner(g, cfg, startID, endID)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return search.Finish(r.order, r.prev, startID, endID, r.dist[endID], true), nil
}

// New returns a search.Finder running Dijkstra with opts.
func New(opts ...search.Option) search.Finder {
	return search.FinderFunc(func(g *core.Graph, startID, endID string) (*search.Result, error) {
		return FindPath(g, startID, endID, opts...)
	})
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *core.Graph        // read-only input
	opts      search.Options     // hooks and frontier choice
	start     string             // source node
	end       string             // target node
	dist      map[string]float64 // node → best known distance (+Inf if unseen)
	prev      map[string]string  // node → predecessor; absent = none
	finalized map[string]bool    // distance proven minimal
	pq        frontier.Frontier  // unfinalized nodes with finite distance
	order     []string           // finalization order
}

func newRunner(g *core.Graph, opts search.Options, start, end string) *runner {
	n := g.NodeCount()

	return &runner{
		g:         g,
		opts:      opts,
		start:     start,
		end:       end,
		dist:      make(map[string]float64, n),
		prev:      make(map[string]string, n),
		finalized: make(map[string]bool, n),
		pq:        frontier.New(opts.Frontier == search.FrontierHeap, n),
		order:     make([]string, 0, n),
	}
}

// init sets every distance to +Inf, the source to 0, and seeds the frontier.
func (r *runner) init() {
	for _, id := range r.g.Nodes() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[r.start] = 0
	r.pq.Set(r.start, 0)
}

// process is the main loop. Each round settles the unfinalized node with the
// smallest tentative distance (ties: smallest ID). It stops when the frontier
// holds no finite candidate or the end node is selected.
func (r *runner) process() error {
	for {
		u, d, ok := r.pq.PopMin()
		if !ok || math.IsInf(d, 1) {
			return nil
		}

		r.finalized[u] = true
		r.order = append(r.order, u)
		r.opts.OnVisit(u)

		if u == r.end {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax tries to improve every unfinalized neighbor of u through u.
// Only strict improvements replace the predecessor, so among equal-cost
// routes the first one found (ascending neighbor ID) wins.
func (r *runner) relax(u string) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	du := r.dist[u]
	for _, a := range arcs {
		if r.finalized[a.To] {
			continue
		}
		alt := du + a.Weight
		if alt < r.dist[a.To] {
			r.dist[a.To] = alt
			r.prev[a.To] = u
			r.pq.Set(a.To, alt)
		}
	}

	return nil
}
