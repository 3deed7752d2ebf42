package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/builder"
	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/grid"
	"github.com/katalvlaran/pathkit/search"
)

func benchmarkField(b *testing.B, h astar.Heuristic) {
	const n = 40
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
		for x := range cells[y] {
			cells[y][x] = 1
		}
	}
	gr, err := grid.New(cells, grid.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	g := gr.ToGraph()
	end := gr.ID(n-1, n/2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPathWith(g, "0,0", end, h, search.WithFrontier(search.FrontierHeap))
	}
}

// BenchmarkAStar_Euclidean measures guided search on an open 40×40 field.
func BenchmarkAStar_Euclidean(b *testing.B) { benchmarkField(b, astar.Euclidean) }

// BenchmarkAStar_Zero measures unguided search for comparison.
func BenchmarkAStar_Zero(b *testing.B) { benchmarkField(b, astar.Zero) }

// BenchmarkAStar_RandomGeometric routes across a scattered 2000-node road mesh.
func BenchmarkAStar_RandomGeometric(b *testing.B) {
	g, err := builder.Build(nil,
		[]builder.Option{builder.WithSeed(11), builder.WithBox(core.Coord{}, 0.05)},
		builder.RandomGeometric(2000, 0.003),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, "0", "1999", search.WithFrontier(search.FrontierHeap))
	}
}
