package gridgraph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/edom/eternal"
	"github.com/katalvlaran/edom/gridgraph"
)

// ExampleGridGraph_ToGraph guards a T-shaped hall. The crossing cell sees
// every other cell, yet one guard cannot stay put forever: once it steps
// into an arm, the other arms are unwatched. Two guards suffice.
func ExampleGridGraph_ToGraph() {
	plan := [][]int{
		{1, 1, 1},
		{0, 1, 0},
	}
	gg, _ := gridgraph.NewGridGraph(plan, gridgraph.DefaultGridOptions())
	g, _ := gg.ToGraph()

	res, _ := eternal.Solve(context.Background(), g)
	fmt.Println("cells:", g.VertexCount(), "guards:", res.K)
	// Output:
	// cells: 4 guards: 2
}
