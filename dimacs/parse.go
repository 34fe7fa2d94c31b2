package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/edom/core"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Parse reads a DIMACS edge file from r.
//
// Steps:
//  1. Skip blank and comment lines.
//  2. The first significant line must be "p edge n m" with n > 0, m ≥ 0.
//  3. Each of the next m significant lines must be "e v1 v2", 1 ≤ vi ≤ n.
//  4. Any further significant line is an ErrEdgeCount.
//
// Duplicate edges are accepted and stored once.
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		g        *core.Graph
		declared int
		seen     int
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "c") {
			continue
		}

		// 2) Header
		if g == nil {
			n, m, perr := parseHeader(fields)
			if perr != nil {
				perr.Line = lineNo
				return nil, perr
			}
			hg, err := core.NewGraph(n)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "problem line", Err: err}
			}
			g, declared = hg, m
			continue
		}

		// 3) Edges
		if fields[0] == "p" {
			return nil, &ParseError{Line: lineNo, Msg: "second problem line", Err: ErrMalformedLine}
		}
		if seen == declared {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("more than %d edges", declared), Err: ErrEdgeCount}
		}
		u, v, perr := parseEdge(fields)
		if perr != nil {
			perr.Line = lineNo
			return nil, perr
		}
		if err := g.AddEdge(u-1, v-1); err != nil {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("edge %d %d", u, v), Err: err}
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Msg: "read", Err: err}
	}

	// 4) Totals
	if g == nil {
		return nil, &ParseError{Msg: "no problem line", Err: ErrMissingHeader}
	}
	if seen != declared {
		return nil, &ParseError{Msg: fmt.Sprintf("got %d edges, header declares %d", seen, declared), Err: ErrEdgeCount}
	}

	return g, nil
}

// Load opens path and parses it.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseHeader validates "p edge n m". Line is filled in by the caller.
func parseHeader(fields []string) (n, m int, err *ParseError) {
	if fields[0] != "p" {
		return 0, 0, &ParseError{Msg: fmt.Sprintf("expected problem line, got %q", fields[0]), Err: ErrMissingHeader}
	}
	if len(fields) != 4 || (fields[1] != "edge" && fields[1] != "col") {
		return 0, 0, &ParseError{Msg: "problem line must be \"p edge <n> <m>\"", Err: ErrMalformedLine}
	}
	n, errN := strconv.Atoi(fields[2])
	m, errM := strconv.Atoi(fields[3])
	if errN != nil || errM != nil {
		return 0, 0, &ParseError{Msg: "non-integer counts in problem line", Err: ErrMalformedLine}
	}
	if n <= 0 || m < 0 {
		return 0, 0, &ParseError{Msg: fmt.Sprintf("invalid counts n=%d m=%d", n, m), Err: ErrMalformedLine}
	}

	return n, m, nil
}

// parseEdge validates "e v1 v2" and returns the 1-based endpoints.
func parseEdge(fields []string) (u, v int, err *ParseError) {
	if fields[0] != "e" || len(fields) != 3 {
		return 0, 0, &ParseError{Msg: "edge line must be \"e <v1> <v2>\"", Err: ErrMalformedLine}
	}
	u, errU := strconv.Atoi(fields[1])
	v, errV := strconv.Atoi(fields[2])
	if errU != nil || errV != nil {
		return 0, 0, &ParseError{Msg: "non-integer endpoint", Err: ErrMalformedLine}
	}

	return u, v, nil
}
