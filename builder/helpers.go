package builder

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// appendBlock adds n fresh vertices to g and returns the id of the first.
// Block vertex i is base+i.
func appendBlock(g *core.Graph, n int) (base int) {
	base = g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return base
}

// link adds the block-local edge (u, v) offset by base.
func link(g *core.Graph, method string, base, u, v int) error {
	if err := g.AddEdge(base+u, base+v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, base+u, base+v, err)
	}

	return nil
}
