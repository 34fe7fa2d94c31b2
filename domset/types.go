package domset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKOutOfRange indicates a set size outside [0, n].
	ErrKOutOfRange = errors.New("domset: k out of range")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("domset: graph is nil")
)

// RangeError reports a requested size K outside [0, N].
type RangeError struct {
	K, N int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("domset: k=%d not in [0,%d]", e.K, e.N)
}

// Unwrap exposes ErrKOutOfRange for errors.Is.
func (e *RangeError) Unwrap() error { return ErrKOutOfRange }

// Set is a dominating set in canonical form: strictly increasing vertex ids.
type Set []int

// Contains reports whether v is a member, by binary search.
func (s Set) Contains(v int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case s[mid] == v:
			return true
		case s[mid] < v:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// OneBased returns a copy with every id shifted by +1, for reporting.
func (s Set) OneBased() []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = v + 1
	}

	return out
}

// String renders the set 1-indexed, e.g. "{1 4 6}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v+1)
	}
	b.WriteByte('}')

	return b.String()
}

// Visit receives each dominating set during Enumerate. The slice is owned by
// the enumerator and reused; copy it to retain. Returning a non-nil error
// stops enumeration and is returned from Enumerate.
type Visit func(s Set) error
