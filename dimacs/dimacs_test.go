package dimacs_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edom/builder"
	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/dimacs"
)

func TestParse_Valid(t *testing.T) {
	in := `c two triangles
p edge 6 6

e 1 2
e 2 3
c mid-file comment
e 1 3
e 4 5
e 5 6
e 4 6
`
	g, err := dimacs.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	ok, err := g.HasEdge(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, g.Components(), 2)
}

func TestParse_ColHeaderAndDuplicates(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p col 3 3\ne 1 2\ne 2 1\ne 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestParse_NoEdges(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 4 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

// TestParse_Errors checks sentinel and line number for each failure class.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line int
	}{
		{"Empty", "", dimacs.ErrMissingHeader, 0},
		{"OnlyComments", "c nothing\n\n", dimacs.ErrMissingHeader, 0},
		{"EdgeBeforeHeader", "e 1 2\np edge 2 1\n", dimacs.ErrMissingHeader, 1},
		{"BadFormat", "p graph 3 1\n", dimacs.ErrMalformedLine, 1},
		{"ZeroVertices", "p edge 0 0\n", dimacs.ErrMalformedLine, 1},
		{"NegativeEdges", "p edge 3 -1\n", dimacs.ErrMalformedLine, 1},
		{"NonInteger", "p edge x 1\n", dimacs.ErrMalformedLine, 1},
		{"BadEdgeTag", "p edge 3 1\na 1 2\n", dimacs.ErrMalformedLine, 2},
		{"ShortEdge", "p edge 3 1\ne 1\n", dimacs.ErrMalformedLine, 2},
		{"SecondHeader", "p edge 3 1\np edge 3 1\n", dimacs.ErrMalformedLine, 2},
		{"TooFew", "p edge 3 2\ne 1 2\n", dimacs.ErrEdgeCount, 0},
		{"TooMany", "p edge 3 1\ne 1 2\ne 2 3\n", dimacs.ErrEdgeCount, 3},
		{"OutOfRange", "p edge 3 1\ne 1 4\n", core.ErrVertexOutOfRange, 2},
		{"ZeroIndex", "p edge 3 1\ne 0 1\n", core.ErrVertexOutOfRange, 2},
		{"SelfLoop", "p edge 3 1\ne 2 2\n", core.ErrSelfLoop, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := dimacs.Parse(strings.NewReader(tc.in))
			assert.Nil(t, g)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var pe *dimacs.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 3 1\ne 1\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "dimacs: line 2: "), err.Error())
}

// TestWriteParse writes a generated graph and reads it back.
func TestWriteParse(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 4), builder.Wheel(5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g, "grid 3x4", "wheel 5"))
	assert.True(t, strings.HasPrefix(buf.String(), "c grid 3x4\nc wheel 5\np edge 17 25\ne 1 2\n"), buf.String())

	back, err := dimacs.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.VertexCount(), back.VertexCount())
}

func TestSaveLoad(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "c5.in")
	require.NoError(t, dimacs.Save(path, g))

	back, err := dimacs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())

	_, err = dimacs.Load(filepath.Join(t.TempDir(), "missing.in"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.in")
	require.NoError(t, os.WriteFile(bad, []byte("e 1 2\n"), 0o644))
	_, err = dimacs.Load(bad)
	assert.ErrorIs(t, err, dimacs.ErrMissingHeader)
	assert.Contains(t, err.Error(), bad)
}
