package enumerate

import (
	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/gf2"
)

// FilterKind tags the predicate a Filter evaluates.
type FilterKind int

const (
	// FilterAlways accepts everything.
	FilterAlways FilterKind = iota
	// FilterRoomBound accepts a matrix while cols − rows ≤ n − k, i.e. while it
	// can still grow into an [n, k] code.
	FilterRoomBound
	// FilterExactSize accepts only length n and dimension k.
	FilterExactSize
)

// String returns the kind name.
func (k FilterKind) String() string {
	switch k {
	case FilterAlways:
		return "always"
	case FilterRoomBound:
		return "room-bound"
	case FilterExactSize:
		return "exact-size"
	default:
		return "unknown"
	}
}

// Filter is a fixed predicate over search matrices and emitted codes.
type Filter struct {
	Kind FilterKind
	N, K int
}

// Always returns the accept-all filter.
func Always() Filter { return Filter{Kind: FilterAlways} }

// RoomBound returns the admission filter of the exact-size mode.
func RoomBound(n, k int) Filter { return Filter{Kind: FilterRoomBound, N: n, K: k} }

// ExactSize returns the output filter of the exact-size mode.
func ExactSize(n, k int) Filter { return Filter{Kind: FilterExactSize, N: n, K: k} }

// AdmitMatrix evaluates the filter on a generator matrix.
func (f Filter) AdmitMatrix(m *gf2.Matrix) bool {
	return f.admit(m.Cols(), m.Rows())
}

// AdmitCode evaluates the filter on a code.
func (f Filter) AdmitCode(c *code.LinearCode) bool {
	return f.admit(c.Length(), c.Dimension())
}

func (f Filter) admit(length, dim int) bool {
	switch f.Kind {
	case FilterRoomBound:
		return length-dim <= f.N-f.K
	case FilterExactSize:
		return dim == f.K && length == f.N
	default:
		return true
	}
}

// filtersFor derives the (admission, output) pair for a run.
func filtersFor(n, k int, exact bool) (in, out Filter) {
	if exact {
		return RoomBound(n, k), ExactSize(n, k)
	}

	return Always(), Always()
}
