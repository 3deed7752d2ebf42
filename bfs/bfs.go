// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/search"
)

// walker encapsulates the mutable state of one BFS call.
type walker struct {
	graph   *core.Graph
	opts    search.Options
	end     string
	queue   []string
	visited map[string]bool    // marked at enqueue time
	dist    map[string]float64 // weight recorded at discovery
	prev    map[string]string  // absent key = no predecessor
	order   []string           // dequeue order
}

// FindPath runs breadth-first search from startID and stops as soon as endID
// is dequeued or the queue drains.
//
// Edge weights are ignored while exploring. Each node's distance is fixed the
// moment it is discovered, as dist[parent] + weight(parent→node), and is never
// revised, so Result.Distance is the weight of the first hop-minimal path found
// and may exceed the cheapest weighted path. Use dijkstra or astar for that.
//
// Errors:
//   - search.ErrNilGraph, core.ErrEmptyNodeID, core.ErrNodeNotFound from search.Precheck.
//
// Complexity:
//   - Time O(V + E·log d) (neighbors are sorted per expansion), Space O(V).
func FindPath(g *core.Graph, startID, endID string, opts ...search.Option) (*search.Result, error) {
	if err := search.Precheck(g, startID, endID); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    search.Apply(opts...),
		end:     endID,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		order:   make([]string, 0, n),
	}

	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	d, reached := w.dist[endID]
	return search.Finish(w.order, w.prev, startID, endID, d, reached), nil
}

// New returns a search.Finder running BFS with opts.
func New(opts ...search.Option) search.Finder {
	return search.FinderFunc(func(g *core.Graph, startID, endID string) (*search.Result, error) {
		return FindPath(g, startID, endID, opts...)
	})
}

// enqueue marks id visited, records its distance and parent, and queues it.
func (w *walker) enqueue(id string, d float64, parent string) {
	w.visited[id] = true
	w.dist[id] = d
	if parent != "" {
		w.prev[id] = parent
	}
	w.queue = append(w.queue, id)
}

// loop processes the queue until the end node is dequeued or the queue is empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		cur := w.dequeue()
		w.order = append(w.order, cur)
		w.opts.OnVisit(cur)

		if cur == w.end {
			return nil
		}
		if err := w.enqueueNeighbors(cur); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first queued ID.
func (w *walker) dequeue() string {
	id := w.queue[0]
	w.queue = w.queue[1:]

	return id
}

// enqueueNeighbors discovers every unseen neighbor of cur in ascending ID order.
func (w *walker) enqueueNeighbors(cur string) error {
	arcs, err := w.graph.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", cur, err)
	}
	for _, a := range arcs {
		if !w.visited[a.To] {
			w.enqueue(a.To, w.dist[cur]+a.Weight, cur)
		}
	}

	return nil
}
