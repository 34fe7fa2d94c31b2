package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// ExampleGraph builds the path 0–1–2 and queries it.
func ExampleGraph() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	nbrs, _ := g.Neighbors(1)
	fmt.Println(nbrs, g.EdgeCount())

	_, err := g.HasEdge(0, 7)
	fmt.Println(errors.Is(err, core.ErrVertexOutOfRange))
	// Output:
	// [0 2] 2
	// true
}
