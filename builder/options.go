// SPDX-License-Identifier: MIT
//
// options.go - functional options and the resolved builder configuration.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn  ("0","1","2",...)
//   • rng      = nil          (stochastic constructors refuse to run)
//   • weightFn = DefaultWeightFn (constant DefaultEdgeWeight)
//   • directed = false        (edges are added in both directions)
//   • bbox     = unit box at the origin scaled to DefaultBoxSize degrees

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathkit/core"
)

// DefaultBoxSize is the side length in degrees of the square that
// RandomGeometric scatters nodes into when WithBox is not given.
const DefaultBoxSize = 0.01

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
	origin   core.Coord
	boxSize  float64
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		boxSize:  DefaultBoxSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefixIDs names nodes prefix+index, e.g. "n0", "n1".
func WithPrefixIDs(prefix string) Option { return WithIDScheme(PrefixIDFn(prefix)) }

// WithSymbolIDs names nodes "A" … "Z" (at most 26 nodes).
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, freezing every stochastic choice.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// RandomGeometric multiplies the generated value by the Euclidean length.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithDirected emits each edge in one direction only (lower index → higher
// index for symmetric topologies).
func WithDirected() Option {
	return func(c *builderConfig) { c.directed = true }
}

// WithBox sets the square RandomGeometric scatters nodes into: corner origin,
// side size degrees. Panics if size is not positive.
func WithBox(origin core.Coord, size float64) Option {
	if !(size > 0) {
		panic("builder: WithBox(size<=0)")
	}
	return func(c *builderConfig) {
		c.origin = origin
		c.boxSize = size
	}
}
