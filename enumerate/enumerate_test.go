package enumerate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socodes/classify"
	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/enumerate"
	"github.com/katalvlaran/socodes/gf2"
)

type S = enumerate.Shape

// collect runs Collect and fails the test on error.
func collect(t *testing.T, n, k int, opts ...enumerate.Option) []*code.LinearCode {
	t.Helper()
	codes, err := enumerate.Collect(n, k, opts...)
	require.NoError(t, err)

	return codes
}

// TestSelfOrthogonal_Tallies checks the (length, dimension) multiset of small runs.
func TestSelfOrthogonal_Tallies(t *testing.T) {
	cases := []struct {
		name string
		n, k int
		opts []enumerate.Option
		want map[S]int
	}{
		{
			name: "n7 k3 even",
			n:    7, k: 3,
			want: map[S]int{
				{2, 1}: 1, {4, 1}: 1, {6, 1}: 1,
				{4, 2}: 1, {6, 2}: 2,
				{6, 3}: 1, {7, 3}: 1,
			},
		},
		{
			name: "n7 k3 doubly-even",
			n:    7, k: 3,
			opts: []enumerate.Option{enumerate.WithDivisor(4)},
			want: map[S]int{{4, 1}: 1, {6, 2}: 1, {7, 3}: 1},
		},
		{
			name: "n7 k2 doubly-even",
			n:    7, k: 2,
			opts: []enumerate.Option{enumerate.WithDoublyEven()},
			want: map[S]int{{4, 1}: 1, {6, 2}: 1},
		},
		{
			name: "n8 k4 exact",
			n:    8, k: 4,
			opts: []enumerate.Option{enumerate.WithExactSize()},
			want: map[S]int{{8, 4}: 2}, // i2^4 and e8
		},
		{
			name: "n8 k4 exact doubly-even",
			n:    8, k: 4,
			opts: []enumerate.Option{enumerate.WithExactSize(), enumerate.WithDivisor(4)},
			want: map[S]int{{8, 4}: 1}, // e8
		},
		{
			name: "n10 k5 exact",
			n:    10, k: 5,
			opts: []enumerate.Option{enumerate.WithExactSize()},
			want: map[S]int{{10, 5}: 2}, // i2^5 and e8+i2
		},
		{
			name: "n2 k1",
			n:    2, k: 1,
			want: map[S]int{{2, 1}: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := enumerate.Tally(collect(t, tc.n, tc.k, tc.opts...))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("tally mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestSelfOrthogonal_Properties checks every yielded code against the invariants.
func TestSelfOrthogonal_Properties(t *testing.T) {
	for _, b := range []int{2, 4, 6} {
		seen := make(map[string]bool)
		for _, c := range collect(t, 9, 4, enumerate.WithDivisor(b)) {
			assert.True(t, c.IsSelfOrthogonal(), "%v not self-orthogonal", c)
			ok, err := c.DivisibleBy(b)
			require.NoError(t, err)
			assert.True(t, ok, "%v has a weight not divisible by %d", c, b)

			assert.GreaterOrEqual(t, c.Length(), 1)
			assert.LessOrEqual(t, c.Length(), 9)
			assert.GreaterOrEqual(t, c.Dimension(), 1)
			assert.LessOrEqual(t, c.Dimension(), 4)

			g := c.GeneratorMatrix()
			assert.Len(t, g.Support(), g.Cols()) // full support

			key, err := classify.Key(g)
			require.NoError(t, err)
			assert.False(t, seen[key], "duplicate class %v", c) // one representative per class
			seen[key] = true
		}
	}
}

// TestSelfOrthogonal_ExactSizeSubset checks that exact mode keeps exactly the
// [n, k] part of the unrestricted run.
func TestSelfOrthogonal_ExactSizeSubset(t *testing.T) {
	all := enumerate.Tally(collect(t, 8, 4))
	exact := enumerate.Tally(collect(t, 8, 4, enumerate.WithExactSize()))
	assert.Equal(t, map[S]int{{8, 4}: all[S{8, 4}]}, exact)
}

// TestSelfOrthogonal_InvalidDivisor covers the rejected values of b.
func TestSelfOrthogonal_InvalidDivisor(t *testing.T) {
	for _, b := range []int{1, 0, -2, 3} {
		seq, err := enumerate.SelfOrthogonal(8, 4, enumerate.WithDivisor(b))
		require.ErrorIs(t, err, enumerate.ErrInvalidParameter, "b=%d", b)
		assert.Nil(t, seq)
		assert.Contains(t, err.Error(), "must be a positive even integer.")
	}

	_, err := enumerate.Collect(8, 4, enumerate.WithDivisor(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b (1) must be a positive even integer.")
}

// TestSelfOrthogonal_Empty covers the degenerate size parameters.
func TestSelfOrthogonal_Empty(t *testing.T) {
	for _, tc := range []struct{ n, k int }{{7, 0}, {7, -1}, {1, 3}, {0, 0}} {
		assert.Empty(t, collect(t, tc.n, tc.k), "n=%d k=%d", tc.n, tc.k)
	}
	// b larger than n leaves no seed.
	assert.Empty(t, collect(t, 5, 2, enumerate.WithDivisor(6)))
}

// TestSelfOrthogonal_OrderAndRepeat checks seed order and that every range
// over the sequence is a fresh traversal.
func TestSelfOrthogonal_OrderAndRepeat(t *testing.T) {
	seq, err := enumerate.SelfOrthogonal(7, 3)
	require.NoError(t, err)

	var first, second []string
	for c, err := range seq {
		require.NoError(t, err)
		first = append(first, c.GeneratorMatrix().Key())
	}
	for c, err := range seq {
		require.NoError(t, err)
		second = append(second, c.GeneratorMatrix().Key())
	}
	assert.Equal(t, first, second)

	codes := collect(t, 7, 3)
	require.NotEmpty(t, codes)
	assert.Equal(t, S{2, 1}, enumerate.ShapeOf(codes[0])) // smallest seed first
}

// TestSelfOrthogonal_EarlyBreak stops after a few codes.
func TestSelfOrthogonal_EarlyBreak(t *testing.T) {
	visits := 0
	seq, err := enumerate.SelfOrthogonal(8, 4, enumerate.WithOnVisit(func(*gf2.Matrix, int) error {
		visits++
		return nil
	}))
	require.NoError(t, err)

	got := 0
	for _, err := range seq {
		require.NoError(t, err)
		got++
		if got == 3 {
			break
		}
	}
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, visits) // every visited node so far was yielded
}

// failingGenerator returns err for every expansion.
type failingGenerator struct{ err error }

func (f failingGenerator) Children(*gf2.Matrix, int, int) ([]*gf2.Matrix, error) {
	return nil, f.err
}

// TestSelfOrthogonal_GeneratorError propagates a child-generation failure once.
func TestSelfOrthogonal_GeneratorError(t *testing.T) {
	boom := errors.New("boom")
	seq, err := enumerate.SelfOrthogonal(6, 2, enumerate.WithChildGenerator(failingGenerator{boom}))
	require.NoError(t, err)

	var codes, errs int
	for c, err := range seq {
		if err != nil {
			assert.Nil(t, c)
			assert.ErrorIs(t, err, boom)
			errs++
			continue
		}
		codes++
	}
	assert.Equal(t, 1, codes) // the seed itself is emitted before expansion
	assert.Equal(t, 1, errs)

	_, err = enumerate.Collect(6, 2, enumerate.WithChildGenerator(failingGenerator{boom}))
	assert.ErrorIs(t, err, boom)
}

// TestSelfOrthogonal_OnVisitError aborts at a chosen depth.
func TestSelfOrthogonal_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	_, err := enumerate.Collect(8, 4, enumerate.WithOnVisit(func(m *gf2.Matrix, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestSelfOrthogonal_OnVisitDepth checks depth equals the number of rows.
func TestSelfOrthogonal_OnVisitDepth(t *testing.T) {
	_, err := enumerate.Collect(8, 3, enumerate.WithOnVisit(func(m *gf2.Matrix, depth int) error {
		if m.Rows() != depth {
			return errors.New("depth mismatch")
		}
		return nil
	}))
	require.NoError(t, err)
}

// TestSelfOrthogonal_Canceled reports the context error.
func TestSelfOrthogonal_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := enumerate.Collect(8, 4, enumerate.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
