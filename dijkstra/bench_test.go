package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/builder"
	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/search"
)

func benchmarkLadder(b *testing.B, kind search.FrontierKind) {
	const n = 500
	g, err := builder.Build(nil,
		[]builder.Option{builder.WithPrefixIDs("v"), builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 3))},
		builder.Ladder(n),
	)
	if err != nil {
		b.Fatal(err)
	}
	end := builder.PrefixIDFn("v")(2*n - 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.FindPath(g, "v0", end, search.WithFrontier(kind))
	}
}

// BenchmarkDijkstra_LadderLinear measures the O(V²) linear-scan frontier.
func BenchmarkDijkstra_LadderLinear(b *testing.B) { benchmarkLadder(b, search.FrontierLinear) }

// BenchmarkDijkstra_LadderHeap measures the indexed-heap frontier.
func BenchmarkDijkstra_LadderHeap(b *testing.B) { benchmarkLadder(b, search.FrontierHeap) }
