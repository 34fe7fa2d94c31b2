package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/domset"
	"github.com/katalvlaran/edom/eternal"
	"github.com/katalvlaran/edom/report"
	"github.com/katalvlaran/edom/transition"
)

func p3Result() *eternal.Result {
	return &eternal.Result{
		RunID:       "run-1",
		Vertices:    3,
		Edges:       2,
		K:           2,
		Status:      eternal.StatusFound,
		SafeSets:    []domset.Set{{0, 1}, {0, 2}, {1, 2}},
		SafeIndices: []int{0, 1, 2},
		Levels: []eternal.LevelStats{
			{K: 1, DominatingSets: 1, Passes: 2},
			{K: 2, DominatingSets: 3, Pairs: 3, Edges: 3, Passes: 1, Safe: 3, Build: 4 * time.Millisecond},
		},
		Transitions: []eternal.Transition{{
			From:  domset.Set{0, 1},
			To:    domset.Set{0, 2},
			Moves: []transition.Move{{From: 0, To: 0}, {From: 1, To: 2}},
		}},
		Elapsed: 12 * time.Millisecond,
	}
}

func TestText_Found(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, "p3", p3Result()))
	want := `Instance: p3
k: 1
k: 2
Safe Dominating Sets of size 2:
Set 1: 1 2
Set 2: 1 3
Set 3: 2 3
Transition {1 2} -> {1 3}
Guard transition:
Guard on 1 moves to 1
Guard on 2 moves to 3
Running time: 12 ms
`
	assert.Equal(t, want, buf.String())
}

func TestText_OtherStatuses(t *testing.T) {
	res := &eternal.Result{
		Status:  eternal.StatusTimeLimitExceeded,
		Levels:  []eternal.LevelStats{{K: 1}},
		Elapsed: 7200 * time.Second,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, "big", res))
	assert.Equal(t, "Instance: big\nk: 1\nTime limit exceeded: 7200000 ms\n", buf.String())

	buf.Reset()
	res.Status = eternal.StatusNoSolution
	require.NoError(t, report.Text(&buf, "big", res))
	assert.Contains(t, buf.String(), "No safe dominating set found\nRunning time: 7200000 ms\n")

	buf.Reset()
	res.Status = eternal.StatusCanceled
	require.NoError(t, report.Text(&buf, "big", res))
	assert.Contains(t, buf.String(), "Search canceled after 7200000 ms\n")
}

// TestTextLevel renders a real inspection of P3 at k=2.
func TestTextLevel(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	lvl, err := eternal.Inspect(context.Background(), g, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.TextLevel(&buf, 2, lvl))
	want := `-- Dominating Sets of size 2:
Set 1: 1 2
Set 2: 1 3
Set 3: 2 3

-- Configuration Graph:
1: 2 3
2: 1 3
3: 1 2

Safe Dominating Sets of size 2:
Set 1: 1 2
Set 2: 1 3
Set 3: 2 3
Passes: [0]
`
	assert.Equal(t, want, buf.String())
}

func TestDocument_YAMLAndJSON(t *testing.T) {
	doc := report.NewDocument("p3", p3Result())
	require.NotNil(t, doc.K)
	assert.Equal(t, 2, *doc.K)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, doc.SafeSets)
	assert.Equal(t, [][2]int{{1, 1}, {2, 3}}, doc.Transitions[0].Moves)
	assert.Equal(t, int64(4), doc.Levels[1].ElapsedMS)

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, doc))
	var fromYAML report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, doc, fromYAML)
	assert.Contains(t, buf.String(), "status: found\n")

	buf.Reset()
	require.NoError(t, report.WriteJSON(&buf, doc))
	var fromJSON report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, doc, fromJSON)
}

func TestDocument_NotFoundOmitsK(t *testing.T) {
	doc := report.NewDocument("x", &eternal.Result{Status: eternal.StatusTimeLimitExceeded})
	assert.Nil(t, doc.K)
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, doc))
	assert.NotContains(t, buf.String(), `"k"`)
	assert.Contains(t, buf.String(), `"status": "time-limit-exceeded"`)
}

func TestWrite_Formats(t *testing.T) {
	for _, f := range []string{"", "text", "yaml", "json"} {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, f, "p3", p3Result()), f)
		assert.NotEmpty(t, buf.String())
	}
	assert.ErrorIs(t, report.Write(&bytes.Buffer{}, "xml", "p3", p3Result()), report.ErrUnknownFormat)
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	c, err := report.NewCSV(&buf)
	require.NoError(t, err)
	require.NoError(t, c.Add("01", p3Result()))
	require.NoError(t, c.Add("02", &eternal.Result{Status: eternal.StatusTimeLimitExceeded, Elapsed: 3 * time.Second}))
	require.NoError(t, c.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"Instance,Guard Set,Time (ms)", "01,2,12", "02,N/A,3000"}, lines)
}

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "01", report.InstanceName("instances/01.in"))
	assert.Equal(t, "grid.3d", report.InstanceName("/a/b/grid.3d.in"))
	assert.Equal(t, "plain", report.InstanceName("plain"))
}
