package dimacs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader indicates input without a "p edge n m" line before
	// the first edge (or no significant line at all).
	ErrMissingHeader = errors.New("dimacs: missing problem line")

	// ErrMalformedLine indicates a line that is neither a comment, a header
	// nor a well-formed edge, or a header with invalid counts.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrEdgeCount indicates fewer or more edge lines than the header declared.
	ErrEdgeCount = errors.New("dimacs: edge count mismatch")
)

// ParseError locates a parse failure.
type ParseError struct {
	Line int    // 1-based; 0 when the failure is at end of input
	Msg  string // human-readable detail
	Err  error  // sentinel or core error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("dimacs: at end of input: %s: %v", e.Msg, e.Err)
	}

	return fmt.Sprintf("dimacs: line %d: %s: %v", e.Line, e.Msg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
