package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a plan: one row per line, cells separated by whitespace.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	var (
		rows   [][]int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, f, ErrBadCell)
			}
			row[i] = n
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: %w", err)
	}

	return rows, nil
}

// Load parses the plan at path and wraps it in a GridGraph.
func Load(path string, opts GridOptions) (*GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %w", err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %s: %w", path, err)
	}

	return NewGridGraph(rows, opts)
}
