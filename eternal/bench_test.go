package eternal_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/eternal"
)

func benchCycle(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkSolve_Cycle8(b *testing.B) {
	g := benchCycle(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eternal.Solve(context.Background(), g); err != nil {
			b.Fatal(err)
		}
	}
}
