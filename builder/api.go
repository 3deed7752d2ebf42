// SPDX-License-Identifier: MIT
//
// api.go - the Build orchestrator and the Constructor contract.
//
// Design contract:
//   - One orchestrator: Build(gopts, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order ⇒
//     identical graphs.
//   - Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// configuration. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a core.Graph with gopts, resolves the builder configuration
// from bopts and applies every constructor in order. The first constructor
// error is returned wrapped as "Build: %w"; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts cfg.idFn(0..n-1) in ascending index order.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// link adds u→v, plus v→u unless the config is directed.
func link(g *core.Graph, cfg builderConfig, method, u, v string, w float64) error {
	var err error
	if cfg.directed {
		err = g.AddNeighbor(u, v, w)
	} else {
		err = g.AddEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: link(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// atLeast returns a wrapped ErrTooFewVertices when n < min.
func atLeast(method, param string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, n, min, ErrTooFewVertices)
	}

	return nil
}
