// SPDX-License-Identifier: MIT
//
// impl_basic.go - deterministic topologies: Path, Cycle, Star, Complete, Ladder.
//
// Edge emission order is stable (ascending indices) so that, with a seeded
// WeightFn, weights land on the same edges on every run.

package builder

import (
	"github.com/katalvlaran/pathkit/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodLadder   = "Ladder"
)

// Path builds P_n: 0 → 1 → … → n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodPath, "n", n, 2); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i), cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a Path closed by (n-1) → 0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodCycle, "n", n, 3); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub idFn(0) joined to leaves idFn(1..n-1) (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodStar, "n", n, 2); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodStar, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, hub, cfg.idFn(i), cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with every pair i < j joined (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodComplete, "n", n, 1); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Ladder builds two rails of n nodes joined by n rungs (n ≥ 2).
// Rail A holds indices 0..n-1, rail B holds n..2n-1; rung i joins i and n+i.
// Rails are emitted before rungs.
//
// Ladders have many equal-length routes, which exercises tie-breaking.
// Complexity: O(n).
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodLadder, "n", n, 2); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodLadder, 2*n); err != nil {
			return err
		}
		for _, base := range []int{0, n} {
			for i := 1; i < n; i++ {
				if err := link(g, cfg, methodLadder, cfg.idFn(base+i-1), cfg.idFn(base+i), cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodLadder, cfg.idFn(i), cfg.idFn(n+i), cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
