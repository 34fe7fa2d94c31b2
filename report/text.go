package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/edom/domset"
	"github.com/katalvlaran/edom/eternal"
	"github.com/katalvlaran/edom/transition"
)

// InstanceName strips directories and the final extension from path.
func InstanceName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Text writes the solve transcript:
//
//	Instance: <name>
//	k: <k>                      one line per completed level
//	Safe Dominating Sets of size <k>:
//	Set <i>: v1 v2 ...          i is the configuration index, 1-based
//	Running time: <ms> ms       or "Time limit exceeded: <ms> ms"
func Text(w io.Writer, instance string, res *eternal.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Instance: %s\n", instance)
	for _, lvl := range res.Levels {
		fmt.Fprintf(bw, "k: %d\n", lvl.K)
	}

	switch res.Status {
	case eternal.StatusFound:
		writeSafe(bw, res.K, res.SafeSets, res.SafeIndices)
		for _, tr := range res.Transitions {
			fmt.Fprintf(bw, "Transition %s -> %s\n", tr.From, tr.To)
			if err := transition.WriteReport(bw, tr.Moves); err != nil {
				return err
			}
		}
		fmt.Fprintf(bw, "Running time: %d ms\n", res.Elapsed.Milliseconds())
	case eternal.StatusTimeLimitExceeded:
		fmt.Fprintf(bw, "Time limit exceeded: %d ms\n", res.Elapsed.Milliseconds())
	case eternal.StatusNoSolution:
		fmt.Fprintf(bw, "No safe dominating set found\n")
		fmt.Fprintf(bw, "Running time: %d ms\n", res.Elapsed.Milliseconds())
	default:
		fmt.Fprintf(bw, "Search %s after %d ms\n", res.Status, res.Elapsed.Milliseconds())
	}

	return bw.Flush()
}

// TextLevel writes the single-k transcript: every dominating set, the
// configuration graph as 1-indexed adjacency lines, then the safe sets.
func TextLevel(w io.Writer, k int, lvl *eternal.Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "-- Dominating Sets of size %d:\n", k)
	for i, s := range lvl.Sets {
		fmt.Fprintf(bw, "Set %d: %s\n", i+1, vertices(s))
	}

	fmt.Fprintf(bw, "\n-- Configuration Graph:\n")
	for i, nbrs := range lvl.Graph.AdjacencyList() {
		fmt.Fprintf(bw, "%d:", i+1)
		for _, j := range nbrs {
			fmt.Fprintf(bw, " %d", j+1)
		}
		fmt.Fprintln(bw)
	}

	var sets []domset.Set
	var idx []int
	for i, ok := range lvl.Safe {
		if ok {
			sets = append(sets, lvl.Sets[i])
			idx = append(idx, i)
		}
	}
	fmt.Fprintln(bw)
	writeSafe(bw, k, sets, idx)
	fmt.Fprintf(bw, "Passes: %v\n", lvl.Graph.Trace())

	return bw.Flush()
}

func writeSafe(w io.Writer, k int, sets []domset.Set, idx []int) {
	fmt.Fprintf(w, "Safe Dominating Sets of size %d:\n", k)
	for n, s := range sets {
		i := n
		if n < len(idx) {
			i = idx[n]
		}
		fmt.Fprintf(w, "Set %d: %s\n", i+1, vertices(s))
	}
}

// vertices renders s 1-indexed and space separated.
func vertices(s domset.Set) string {
	one := s.OneBased()
	parts := make([]string, len(one))
	for i, v := range one {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}
