package main

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socodes/catalog"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// TestEnumerate_Text checks the reference text layout.
func TestEnumerate_Text(t *testing.T) {
	out, err := execute(t, "enumerate", "--n", "7", "--k", "2", "--b", "4")
	require.NoError(t, err)
	want := "[4, 1] linear code over GF(2)\n" +
		"[1 1 1 1]\n" +
		"[6, 2] linear code over GF(2)\n" +
		"[1 1 0 0 1 1]\n" +
		"[0 0 1 1 1 1]\n"
	assert.Equal(t, want, out)
}

// TestEnumerate_Count checks the size of the default run in text mode.
func TestEnumerate_Count(t *testing.T) {
	out, err := execute(t, "enumerate")
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(out, "linear code over GF(2)"))

	par, err := execute(t, "enumerate", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, out, par)
}

// TestEnumerate_JSON decodes the JSON document of the self-dual codes of length 8.
func TestEnumerate_JSON(t *testing.T) {
	out, err := execute(t, "enumerate", "--n", "8", "--k", "4", "--equal", "--format", "json")
	require.NoError(t, err)

	var views []codeView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, 8, v.Length)
		assert.Equal(t, 4, v.Dimension)
		assert.Len(t, v.Generator, 4)
	}
	dmins := []int{views[0].MinimumDistance, views[1].MinimumDistance}
	assert.ElementsMatch(t, []int{2, 4}, dmins) // i2^4 and e8
}

// TestEnumerate_YAML decodes the YAML document.
func TestEnumerate_YAML(t *testing.T) {
	out, err := execute(t, "enumerate", "--n", "8", "--k", "4", "--b", "4", "--equal", "--format", "yaml")
	require.NoError(t, err)

	var views []codeView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.True(t, views[0].DoublyEven)
	assert.Equal(t, 4, views[0].MinimumDistance)
}

// TestEnumerate_Errors covers an invalid divisor and format.
func TestEnumerate_Errors(t *testing.T) {
	_, err := execute(t, "enumerate", "--n", "8", "--k", "4", "--b", "1", "--equal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b (1) must be a positive even integer.")

	_, err = execute(t, "enumerate", "--format", "xml")
	require.Error(t, err)
}

// TestStoreWorkflow records a run, lists it and shows a filtered part.
func TestStoreWorkflow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "codes.db")

	_, err := execute(t, "enumerate", "--n", "7", "--k", "3", "--store", db)
	require.NoError(t, err)

	out, err := execute(t, "runs", "--store", db, "--format", "json")
	require.NoError(t, err)
	var runs []catalog.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Finished)
	assert.Equal(t, 8, runs[0].Count)
	assert.Equal(t, catalog.Params{N: 7, K: 3, B: 2}, runs[0].Params)

	table, err := execute(t, "runs", "--store", db)
	require.NoError(t, err)
	assert.Contains(t, table, runs[0].ID)

	shown, err := execute(t, "show", "--store", db, "--run", runs[0].ID, "--dim", "3")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(shown, "linear code over GF(2)"))

	_, err = execute(t, "show", "--store", db, "--run", "missing")
	require.ErrorIs(t, err, catalog.ErrRunNotFound)
}

// TestRuns_Empty prints a notice for an empty catalog.
func TestRuns_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	s, err := catalog.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	out, err := execute(t, "runs", "--store", path)
	require.NoError(t, err)
	assert.Equal(t, "no runs found\n", out)
}

// TestReaders_MissingStore rejects a catalog path that does not exist
// without creating it.
func TestReaders_MissingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")

	_, err := execute(t, "runs", "--store", path)
	require.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = execute(t, "show", "--store", path, "--run", "x")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
