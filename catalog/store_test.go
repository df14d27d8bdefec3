package catalog_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socodes/catalog"
	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/enumerate"
	"github.com/katalvlaran/socodes/gf2"
)

// tickClock returns a clock that advances one second per call.
func tickClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0

	return func() time.Time {
		calls++
		return t0.Add(time.Duration(calls) * time.Second)
	}
}

func openStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.Open(filepath.Join(t.TempDir(), "db", "catalog.db"), catalog.WithClock(tickClock()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// TestStore_RoundTrip records a full run and reads it back.
func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	codes, err := enumerate.Collect(7, 3)
	require.NoError(t, err)

	run, err := s.BeginRun(ctx, catalog.Params{N: 7, K: 3, B: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	for _, c := range codes {
		require.NoError(t, s.Put(ctx, run.ID, c))
	}
	require.NoError(t, s.FinishRun(ctx, run.ID, len(codes)))

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, catalog.Params{N: 7, K: 3, B: 2}, runs[0].Params)
	assert.True(t, runs[0].Finished)
	assert.Equal(t, len(codes), runs[0].Count)
	assert.True(t, runs[0].FinishedAt.After(runs[0].StartedAt))

	got, err := s.Codes(ctx, run.ID, enumerate.Shape{})
	require.NoError(t, err)
	require.Len(t, got, len(codes))
	for i := range codes {
		assert.True(t, codes[i].GeneratorMatrix().Equal(got[i].GeneratorMatrix()), "code %d", i)
	}

	sixTwo, err := s.Codes(ctx, run.ID, enumerate.Shape{Length: 6, Dimension: 2})
	require.NoError(t, err)
	assert.Len(t, sixTwo, 2)

	dimThree, err := s.Codes(ctx, run.ID, enumerate.Shape{Dimension: 3})
	require.NoError(t, err)
	assert.Len(t, dimThree, 2) // [6, 3] and [7, 3]
}

// TestStore_Entries checks the recorded invariants of the [7, 3] simplex code.
func TestStore_Entries(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	codes, err := enumerate.Collect(7, 3, enumerate.WithExactSize())
	require.NoError(t, err)
	require.Len(t, codes, 1)

	run, err := s.BeginRun(ctx, catalog.Params{N: 7, K: 3, B: 2, Exact: true})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, run.ID, codes[0]))

	entries, err := s.Entries(ctx, run.ID, enumerate.Shape{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, 1, e.Seq)
	assert.Equal(t, 4, e.MinimumDistance)
	assert.Equal(t, []int{1, 0, 0, 0, 7, 0, 0, 0}, e.WeightDistribution)
	assert.NotEmpty(t, e.Key)

	r, err := s.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, r.Params.Exact)
	assert.False(t, r.Finished)
}

// TestStore_Duplicate rejects a second representative of a stored class.
func TestStore_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	run, err := s.BeginRun(ctx, catalog.Params{N: 4, K: 2, B: 2})
	require.NoError(t, err)

	a, err := gf2.FromRows([][]uint8{{1, 1, 0, 0}, {0, 0, 1, 1}})
	require.NoError(t, err)
	b, err := gf2.FromRows([][]uint8{{1, 0, 1, 0}, {1, 1, 1, 1}})
	require.NoError(t, err)
	ca, err := code.New(a)
	require.NoError(t, err)
	cb, err := code.New(b)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, run.ID, ca))
	require.ErrorIs(t, s.Put(ctx, run.ID, cb), catalog.ErrDuplicate)

	// Another run may hold the same class.
	other, err := s.BeginRun(ctx, catalog.Params{N: 4, K: 2, B: 2})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, other.ID, cb))
}

// TestStore_Errors covers unknown runs and a closed store.
func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	s, err := catalog.Open(catalog.MemoryPath)
	require.NoError(t, err)

	codes, err := enumerate.Collect(4, 1)
	require.NoError(t, err)
	require.NotEmpty(t, codes)

	require.ErrorIs(t, s.Put(ctx, "missing", codes[0]), catalog.ErrRunNotFound)
	require.ErrorIs(t, s.FinishRun(ctx, "missing", 0), catalog.ErrRunNotFound)
	_, err = s.Codes(ctx, "missing", enumerate.Shape{})
	require.ErrorIs(t, err, catalog.ErrRunNotFound)
	_, err = s.Run(ctx, "missing")
	require.ErrorIs(t, err, catalog.ErrRunNotFound)
	require.ErrorIs(t, s.Put(ctx, "missing", nil), code.ErrNilGenerator)

	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Close(), catalog.ErrClosed)
	_, err = s.BeginRun(ctx, catalog.Params{})
	require.ErrorIs(t, err, catalog.ErrClosed)
	_, err = s.Runs(ctx)
	require.ErrorIs(t, err, catalog.ErrClosed)
	require.ErrorIs(t, s.Put(ctx, "x", codes[0]), catalog.ErrClosed)
	require.ErrorIs(t, s.FinishRun(ctx, "x", 0), catalog.ErrClosed)
	_, err = s.Entries(ctx, "x", enumerate.Shape{})
	require.ErrorIs(t, err, catalog.ErrClosed)
}

// TestStore_Reopen keeps runs across Open calls on the same file.
func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := catalog.Open(path, catalog.WithClock(tickClock()))
	require.NoError(t, err)
	first, err := s.BeginRun(ctx, catalog.Params{N: 8, K: 4, B: 4})
	require.NoError(t, err)
	second, err := s.BeginRun(ctx, catalog.Params{N: 6, K: 3, B: 2})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = catalog.Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first.ID, runs[0].ID) // oldest first
	assert.Equal(t, second.ID, runs[1].ID)
	assert.Equal(t, path, s.Path())
}

// TestStore_MustExist refuses to create a missing file and opens an existing one.
func TestStore_MustExist(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "sub", "missing.db")

	_, err := catalog.Open(missing, catalog.WithMustExist())
	require.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = os.Stat(missing)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = os.Stat(filepath.Dir(missing))
	assert.ErrorIs(t, err, fs.ErrNotExist) // no parent directory either

	path := filepath.Join(dir, "catalog.db")
	s, err := catalog.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = catalog.Open(path, catalog.WithMustExist())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = catalog.Open(catalog.MemoryPath, catalog.WithMustExist())
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
