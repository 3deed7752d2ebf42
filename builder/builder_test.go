// Package builder_test verifies topology counts, determinism, option
// handling and error sentinels of the fixture builders.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/builder"
	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/geo"
	"github.com/katalvlaran/pathkit/search"
)

// arcsOf returns every directed edge as "u→v".
func arcsOf(t *testing.T, g *core.Graph) map[string]float64 {
	t.Helper()
	out := make(map[string]float64)
	for _, u := range g.Nodes() {
		arcs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, a := range arcs {
			out[u+"→"+a.To] = a.Weight
		}
	}

	return out
}

func TestConstructors_Counts(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		opts  []builder.Option
		wantV int
		wantE int // directed arcs
	}{
		{"Path(4)", builder.Path(4), nil, 4, 6},
		{"Path(4)/directed", builder.Path(4), []builder.Option{builder.WithDirected()}, 4, 3},
		{"Cycle(5)", builder.Cycle(5), nil, 5, 10},
		{"Star(6)", builder.Star(6), nil, 6, 10},
		{"Complete(5)", builder.Complete(5), nil, 5, 20},
		{"Complete(1)", builder.Complete(1), nil, 1, 0},
		{"Ladder(4)", builder.Ladder(4), nil, 8, 20},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), nil, 6, 30},
		{"RandomSparse(6,1)/directed", builder.RandomSparse(6, 1), []builder.Option{builder.WithDirected()}, 6, 30},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), nil, 6, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(nil, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Ladder(1)", builder.Ladder(1), builder.ErrTooFewVertices},
		{"RandomSparse/p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse/NaN", builder.RandomSparse(3, math.NaN()), builder.ErrInvalidProbability},
		{"RandomSparse/rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomGeometric/rng", builder.RandomGeometric(3, 0.1), builder.ErrNeedRandSource},
		{"RandomGeometric/radius", builder.RandomGeometric(3, 0), builder.ErrInvalidRadius},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPath_IDsAndWeights(t *testing.T) {
	g, err := builder.Build(nil,
		[]builder.Option{builder.WithSymbolIDs(), builder.WithWeightFn(builder.ConstantWeightFn(2.5)), builder.WithDirected()},
		builder.Path(3),
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A→B": 2.5, "B→C": 2.5}, arcsOf(t, g))
}

func TestLadder_Layout(t *testing.T) {
	g, err := builder.Build(nil, []builder.Option{builder.WithPrefixIDs("v"), builder.WithDirected()}, builder.Ladder(3))
	require.NoError(t, err)

	arcs := arcsOf(t, g)
	for _, k := range []string{"v0→v1", "v1→v2", "v3→v4", "v4→v5", "v0→v3", "v1→v4", "v2→v5"} {
		assert.Contains(t, arcs, k)
	}
	assert.Len(t, arcs, 7)
}

func TestRandom_DeterministicForSeed(t *testing.T) {
	build := func(seed int64) map[string]float64 {
		g, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(10)), builder.WithDirected()},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return arcsOf(t, g)
	}
	assert.Equal(t, build(5), build(5))
	assert.NotEqual(t, build(5), build(6))
}

func TestRandomGeometric_LocatedAndEuclidean(t *testing.T) {
	origin := core.Coord{Lat: 52.5, Lng: 13.4}
	g, err := builder.Build(nil,
		[]builder.Option{builder.WithSeed(3), builder.WithBox(origin, 0.01)},
		builder.RandomGeometric(40, 0.003),
	)
	require.NoError(t, err)
	require.Equal(t, 40, g.NodeCount())
	require.Positive(t, g.EdgeCount())

	for _, u := range g.Nodes() {
		cu, ok, err := g.Coord(u)
		require.NoError(t, err)
		require.True(t, ok)
		assert.GreaterOrEqual(t, cu.Lat, origin.Lat)
		assert.Less(t, cu.Lat, origin.Lat+0.01)

		arcs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, a := range arcs {
			cv, _, _ := g.Coord(a.To)
			assert.InDelta(t, geo.Euclidean(cu, cv), a.Weight, 1e-9)
			assert.LessOrEqual(t, math.Hypot(cu.Lat-cv.Lat, cu.Lng-cv.Lng), 0.003+1e-12)
		}
	}
}

func TestRandomGeometric_AStarMatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 1.5))},
			builder.RandomGeometric(60, 0.003),
		)
		require.NoError(t, err)

		want, err := dijkstra.FindPath(g, "0", "59")
		require.NoError(t, err)
		got, err := astar.FindPath(g, "0", "59", search.WithFrontier(search.FrontierHeap))
		require.NoError(t, err)

		require.Equal(t, want.Found(), got.Found(), "seed %d", seed)
		if want.Found() {
			assert.InDelta(t, want.Distance, got.Distance, 1e-9, "seed %d", seed)
		}
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithBox(core.Coord{}, 0) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(0) })
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
}

func TestWeightFns_NilRand(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 9)(nil))
	assert.Zero(t, builder.IntWeightFn(5)(nil))
	assert.Equal(t, "x7", builder.PrefixIDFn("x")(7))
}
