// SPDX-License-Identifier: MIT

// Package compare runs several search engines over one graph concurrently and
// reports how their answers line up.
//
// Engines only read the graph, so a single *core.Graph is shared by every
// goroutine without copying. Results keep the order in which algorithms were
// passed to Run, whatever order they finish in.
package compare

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/search"
)

// Sentinel errors for Run.
var (
	// ErrNoAlgorithms indicates Run was called without any algorithm.
	ErrNoAlgorithms = errors.New("compare: no algorithms given")

	// ErrDuplicateName indicates two algorithms share a name.
	ErrDuplicateName = errors.New("compare: duplicate algorithm name")

	// ErrNilFinder indicates an Algorithm without a Finder.
	ErrNilFinder = errors.New("compare: algorithm has nil finder")
)

// Tolerance is the absolute distance difference under which Agree treats two
// results as equal.
const Tolerance = 1e-9

// Algorithm names a search.Finder for reporting.
type Algorithm struct {
	Name   string
	Finder search.Finder
}

// Defaults returns bfs, dijkstra and astar (Euclidean) configured with opts.
func Defaults(opts ...search.Option) []Algorithm {
	return []Algorithm{
		{Name: "bfs", Finder: bfs.New(opts...)},
		{Name: "dijkstra", Finder: dijkstra.New(opts...)},
		{Name: "astar", Finder: astar.New(astar.Euclidean, opts...)},
	}
}

// Entry is one algorithm's outcome.
type Entry struct {
	Name    string
	Result  *search.Result
	Elapsed time.Duration
}

// Report collects the entries of one Run in argument order.
type Report struct {
	Start, End string
	Entries    []Entry
}

// Run executes every algorithm on g from startID to endID concurrently.
//
// Behavior:
//   - An algorithm not yet started when ctx is done is skipped and Run
//     returns ctx.Err(). A search already running finishes normally.
//   - The first engine error cancels the remaining ones and is returned,
//     wrapped with the algorithm name.
//
// Errors: ErrNoAlgorithms, ErrDuplicateName, ErrNilFinder, engine errors, ctx errors.
func Run(ctx context.Context, g *core.Graph, startID, endID string, algs ...Algorithm) (*Report, error) {
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}
	seen := make(map[string]bool, len(algs))
	for _, a := range algs {
		if a.Finder == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilFinder, a.Name)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, a.Name)
		}
		seen[a.Name] = true
	}

	entries := make([]Entry, len(algs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, a := range algs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			res, err := a.Finder.FindPath(g, startID, endID)
			if err != nil {
				return fmt.Errorf("compare: %s: %w", a.Name, err)
			}
			// each goroutine owns its slot
			entries[i] = Entry{Name: a.Name, Result: res, Elapsed: time.Since(began)}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Report{Start: startID, End: endID, Entries: entries}, nil
}

// Lookup returns the entry named name.
func (r *Report) Lookup(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// Agree reports whether algorithms a and b both reached the end node with
// distances within Tolerance, or both found it unreachable. Unknown names never agree.
func (r *Report) Agree(a, b string) bool {
	ea, ok := r.Lookup(a)
	if !ok {
		return false
	}
	eb, ok := r.Lookup(b)
	if !ok {
		return false
	}
	if ea.Result.Found() != eb.Result.Found() {
		return false
	}
	if !ea.Result.Found() {
		return true
	}

	return math.Abs(ea.Result.Distance-eb.Result.Distance) <= Tolerance
}

// Best returns the name of the entry with the smallest distance, ties going to
// the earliest entry. ok is false when no entry reached the end node.
func (r *Report) Best() (name string, ok bool) {
	best := math.Inf(1)
	for _, e := range r.Entries {
		if e.Result.Found() && e.Result.Distance < best {
			name, best, ok = e.Name, e.Result.Distance, true
		}
	}

	return name, ok
}

// String renders one line per entry: "name: <result> in <elapsed>".
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s → %s\n", r.Start, r.End)
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "  %-10s %v in %v\n", e.Name+":", e.Result, e.Elapsed)
	}

	return sb.String()
}
