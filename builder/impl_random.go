// SPDX-License-Identifier: MIT
//
// impl_random.go - stochastic topologies: RandomSparse and RandomGeometric.
//
// Both require an RNG (WithSeed/WithRand) and consume it in a fixed order:
// node positions first (geometric only), then one draw per candidate pair,
// then one weight draw per emitted edge.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/geo"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomGeometric = "RandomGeometric"
)

// RandomSparse samples an Erdős–Rényi graph over n nodes (n ≥ 1): each
// candidate pair is kept independently with probability p. Undirected
// configs try pairs i < j; directed configs try every ordered pair i ≠ j.
//
// p ∈ {0, 1} is deterministic and runs without an RNG.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		keep := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomGeometric scatters n located nodes (n ≥ 1) uniformly in the
// configured box and joins every pair whose degree-space distance is at most
// radius. Each edge weighs geo.Euclidean between its endpoints times
// cfg.weightFn; with factors ≥ 1 (the default is exactly 1) the Euclidean A*
// heuristic stays admissible.
//
// Complexity: O(n²).
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodRandomGeometric, "n", n, 1); err != nil {
			return err
		}
		if !(radius > 0) || math.IsInf(radius, 1) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		pos := make([]core.Coord, n)
		for i := range pos {
			pos[i] = core.Coord{
				Lat: cfg.origin.Lat + cfg.rng.Float64()*cfg.boxSize,
				Lng: cfg.origin.Lng + cfg.rng.Float64()*cfg.boxSize,
			}
			id := cfg.idFn(i)
			if err := g.AddNode(id, core.WithCoord(pos[i].Lat, pos[i].Lng)); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRandomGeometric, id, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if math.Hypot(pos[i].Lat-pos[j].Lat, pos[i].Lng-pos[j].Lng) > radius {
					continue
				}
				w := geo.Euclidean(pos[i], pos[j]) * cfg.weightFn(cfg.rng)
				if err := link(g, cfg, methodRandomGeometric, cfg.idFn(i), cfg.idFn(j), w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
