// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/internal/frontier"
	"github.com/katalvlaran/pathkit/search"
)

// FindPath runs A* from startID to endID with the Euclidean heuristic.
func FindPath(g *core.Graph, startID, endID string, opts ...search.Option) (*search.Result, error) {
	return FindPathWith(g, startID, endID, Euclidean, opts...)
}

// FindPathWith runs A* from startID to endID guided by h.
//
// A nil h falls back to Euclidean. When either node of a heuristic evaluation
// has no coordinate, the estimate is 0 for that node.
//
// Returns:
//   - Result.VisitedOrder: nodes in expansion order, the end node last when reached.
//   - Result.Distance: gScore of the end node, which is the minimal path cost
//     whenever h is admissible; +Inf if the end node was never reached.
//
// Errors:
//   - search.ErrNilGraph, core.ErrEmptyNodeID, core.ErrNodeNotFound from search.Precheck.
//
// Complexity:
//   - Time:  O(V²) with search.FrontierLinear, O((V + E) log V) with search.FrontierHeap.
//   - Space: O(V).
func FindPathWith(g *core.Graph, startID, endID string, h Heuristic, opts ...search.Option) (*search.Result, error) {
	if err := search.Precheck(g, startID, endID); err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	if h == nil {
		h = Euclidean
	}

	s := newSolver(g, search.Apply(opts...), h, startID, endID)
	if err := s.run(); err != nil {
		return nil, err
	}

	return search.Finish(s.order, s.prev, startID, endID, s.gScore[endID], true), nil
}

// New returns a search.Finder running A* with h and opts.
func New(h Heuristic, opts ...search.Option) search.Finder {
	return search.FinderFunc(func(g *core.Graph, startID, endID string) (*search.Result, error) {
		return FindPathWith(g, startID, endID, h, opts...)
	})
}

// solver holds the mutable state for a single A* execution.
type solver struct {
	g      *core.Graph
	opts   search.Options
	h      Heuristic
	start  string
	end    string
	goal   core.Coord // end node position
	hasPos bool       // end node is located

	gScore map[string]float64 // cost from start (+Inf if unseen)
	fScore map[string]float64 // gScore + estimate to end
	prev   map[string]string  // absent = no predecessor
	open   frontier.Frontier  // keyed by fScore
	closed map[string]bool
	order  []string
}

func newSolver(g *core.Graph, opts search.Options, h Heuristic, start, end string) *solver {
	n := g.NodeCount()
	s := &solver{
		g:      g,
		opts:   opts,
		h:      h,
		start:  start,
		end:    end,
		gScore: make(map[string]float64, n),
		fScore: make(map[string]float64, n),
		prev:   make(map[string]string, n),
		open:   frontier.New(opts.Frontier == search.FrontierHeap, n),
		closed: make(map[string]bool, n),
		order:  make([]string, 0, n),
	}
	// Precheck guarantees end exists, so the error is always nil here.
	s.goal, s.hasPos, _ = g.Coord(end)

	return s
}

// estimate returns h(id, end), or 0 when either position is unknown.
func (s *solver) estimate(id string) float64 {
	if !s.hasPos {
		return 0
	}
	c, ok, err := s.g.Coord(id)
	if err != nil || !ok {
		return 0
	}

	return s.h(c, s.goal)
}

// run initialises scores and expands the open set until the end node is
// selected or the open set drains.
func (s *solver) run() error {
	for _, id := range s.g.Nodes() {
		s.gScore[id] = math.Inf(1)
		s.fScore[id] = math.Inf(1)
	}
	s.gScore[s.start] = 0
	s.fScore[s.start] = s.estimate(s.start)
	s.open.Set(s.start, s.fScore[s.start])

	for {
		cur, _, ok := s.open.PopMin()
		if !ok {
			return nil
		}
		s.order = append(s.order, cur)
		s.opts.OnVisit(cur)
		if cur == s.end {
			return nil
		}
		s.closed[cur] = true

		if err := s.expand(cur); err != nil {
			return err
		}
	}
}

// expand relaxes every neighbor of cur that is not closed.
//
// A neighbor outside the open set is admitted unconditionally. One already
// open is only updated when the new gScore is strictly smaller.
func (s *solver) expand(cur string) error {
	arcs, err := s.g.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", cur, err)
	}
	gCur := s.gScore[cur]
	for _, a := range arcs {
		if s.closed[a.To] {
			continue
		}
		tentative := gCur + a.Weight
		if s.open.Contains(a.To) && tentative >= s.gScore[a.To] {
			continue
		}

		s.prev[a.To] = cur
		s.gScore[a.To] = tentative
		s.fScore[a.To] = tentative + s.estimate(a.To)
		s.open.Set(a.To, s.fScore[a.To])
	}

	return nil
}
