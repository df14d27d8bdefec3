package enumerate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/enumerate"
)

func keys(codes []*code.LinearCode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.GeneratorMatrix().Key()
	}

	return out
}

// TestCollectParallel_MatchesCollect compares the parallel collector with the
// sequential one for several worker counts.
func TestCollectParallel_MatchesCollect(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, b := range []int{2, 4} {
		want, err := enumerate.Collect(10, 4, enumerate.WithDivisor(b))
		require.NoError(t, err)
		for _, workers := range []int{0, 1, 3} {
			got, err := enumerate.CollectParallel(context.Background(), 10, 4, workers, enumerate.WithDivisor(b))
			require.NoError(t, err)
			if diff := cmp.Diff(keys(want), keys(got)); diff != "" {
				t.Errorf("b=%d workers=%d (-want +got):\n%s", b, workers, diff)
			}
		}
	}
}

// TestCollectParallel_Errors covers validation, generator failure and cancellation.
func TestCollectParallel_Errors(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := enumerate.CollectParallel(context.Background(), 8, 4, 2, enumerate.WithDivisor(3))
	require.ErrorIs(t, err, enumerate.ErrInvalidParameter)

	boom := errors.New("boom")
	_, err = enumerate.CollectParallel(context.Background(), 8, 4, 2,
		enumerate.WithChildGenerator(failingGenerator{boom}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enumerate.CollectParallel(ctx, 8, 4, 2)
	require.ErrorIs(t, err, context.Canceled)
}

// TestCollectParallel_Empty returns no codes and no error for degenerate sizes.
func TestCollectParallel_Empty(t *testing.T) {
	codes, err := enumerate.CollectParallel(context.Background(), 1, 1, 4)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

// TestTally counts shapes.
func TestTally(t *testing.T) {
	codes, err := enumerate.Collect(6, 3)
	require.NoError(t, err)
	got := enumerate.Tally(codes)
	assert.Equal(t, map[enumerate.Shape]int{
		{Length: 2, Dimension: 1}: 1,
		{Length: 4, Dimension: 1}: 1,
		{Length: 6, Dimension: 1}: 1,
		{Length: 4, Dimension: 2}: 1,
		{Length: 6, Dimension: 2}: 2,
		{Length: 6, Dimension: 3}: 1,
	}, got)
	assert.Empty(t, enumerate.Tally(nil))
	assert.Equal(t, "[6, 2]", enumerate.Shape{Length: 6, Dimension: 2}.String())
}
