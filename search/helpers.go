// SPDX-License-Identifier: MIT
//
// File: helpers.go
// Role: Precondition checks, predecessor-chain reconstruction and path weighing
//       shared by bfs, dijkstra and astar.

package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathkit/core"
)

// Precheck validates the inputs of a FindPath call before any search state is built.
//
// Errors (in order):
//   - ErrNilGraph if g is nil.
//   - core.ErrEmptyNodeID if startID or endID is empty.
//   - core.ErrNodeNotFound (wrapped with the offending role and ID) if either is absent.
func Precheck(g *core.Graph, startID, endID string) error {
	if g == nil {
		return ErrNilGraph
	}
	if startID == "" || endID == "" {
		return core.ErrEmptyNodeID
	}
	if !g.HasNode(startID) {
		return fmt.Errorf("%w: start %q", core.ErrNodeNotFound, startID)
	}
	if !g.HasNode(endID) {
		return fmt.Errorf("%w: end %q", core.ErrNodeNotFound, endID)
	}

	return nil
}

// Reconstruct walks prev backwards from endID and returns the start→end path.
//
// An absent key in prev means "no predecessor". The path is empty when endID
// has no predecessor and differs from startID; startID == endID yields
// [startID]. The walk is bounded by len(prev)+1 steps, so a malformed prev map
// cannot loop forever.
func Reconstruct(prev map[string]string, startID, endID string) []string {
	if _, ok := prev[endID]; !ok && endID != startID {
		return []string{}
	}

	path := []string{endID}
	for cur, steps := endID, 0; cur != startID && steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Finish assembles the Result for a search that recorded prev and the end distance.
// A missing or infinite endDist means the end node was never reached.
func Finish(visited []string, prev map[string]string, startID, endID string, endDist float64, reached bool) *Result {
	if !reached || math.IsInf(endDist, 1) {
		return unreachable(visited)
	}

	return &Result{
		VisitedOrder: visited,
		Path:         Reconstruct(prev, startID, endID),
		Distance:     endDist,
	}
}

// PathWeight sums the edge weights along path in g.
// An empty path weighs +Inf; a single node weighs 0.
// Returns ErrBrokenPath if some consecutive pair is not an edge.
func PathWeight(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return math.Inf(1), nil
	}
	if !g.HasNode(path[0]) {
		return 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, path[0])
	}

	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %s→%s", ErrBrokenPath, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}
