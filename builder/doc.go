// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks and demos.
//
// A graph is produced by Build from core graph options, builder options and an
// ordered list of constructors:
//
//	g, err := builder.Build(nil,
//	    []builder.Option{builder.WithSeed(7), builder.WithPrefixIDs("n")},
//	    builder.RandomGeometric(200, 0.002),
//	)
//
// Components:
//
//   - Constructors: Path, Cycle, Star, Complete, Ladder (deterministic);
//     RandomSparse, RandomGeometric (seeded).
//   - ID schemes (IDFn): DefaultIDFn "0","1",…; SymbolIDFn "A"…"Z"; PrefixIDFn.
//   - Weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     IntWeightFn. Every generated weight is finite and non-negative, which
//     core.Graph requires.
//   - WithDirected emits one-way edges; the default adds both directions.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless values; constructors return
//     wrapped sentinels (ErrTooFewVertices, ErrInvalidProbability,
//     ErrInvalidRadius, ErrNeedRandSource).
//   - RandomGeometric nodes carry coordinates and Euclidean-length weights, so
//     A* and Dijkstra agree on them.
package builder
