package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/edom/core"
)

// Write emits g in DIMACS edge format: optional "c" comment lines, the
// problem line, then one "e" line per edge in (u, v) ascending order.
func Write(w io.Writer, g *core.Graph, comments ...string) error {
	if g == nil {
		return fmt.Errorf("dimacs: write: nil graph")
	}
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		fmt.Fprintf(bw, "c %s\n", c)
	}
	edges := g.Edges()
	fmt.Fprintf(bw, "p edge %d %d\n", g.VertexCount(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e.V1+1, e.V2+1)
	}

	return bw.Flush()
}

// Save writes g to path, creating or truncating it.
func Save(path string, g *core.Graph, comments ...string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dimacs: close %s: %w", path, cerr)
		}
	}()

	return Write(f, g, comments...)
}
