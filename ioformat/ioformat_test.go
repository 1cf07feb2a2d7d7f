package ioformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anjanaskumar27/winnow-ice/ltf"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
	"github.com/stretchr/testify/require"
)

func TestRRoundTrip(t *testing.T) {
	r := pset.Hypothesis{
		pset.Conjunction{},
		pset.Conjunction{2, 5, 7},
	}
	path := filepath.Join(t.TempDir(), "x.R")
	require.NoError(t, WriteR(path, r))

	got, err := ReadR(path)
	require.NoError(t, err)
	require.Equal(t, r, got)
}

func TestWinnowWeightsRoundTrip(t *testing.T) {
	objs := []*ltf.Winnow{ltf.NewWinnow(3), ltf.NewWinnow(2)}
	objs[0].Weights = []float64{1, 2, 3}
	objs[1].Weights = []float64{4, 5}

	path := filepath.Join(t.TempDir(), "x.W")
	require.NoError(t, WriteWinnowWeights(path, objs))

	fresh := []*ltf.Winnow{ltf.NewWinnow(3), ltf.NewWinnow(2)}
	require.NoError(t, ReadWinnowWeights(path, fresh))
	require.Equal(t, []float64{1, 2, 3}, fresh[0].Weights)
	require.Equal(t, []float64{4, 5}, fresh[1].Weights)
}

func TestLoadStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "s")

	writeFile(t, stem+".attributes", "3\np0\np1\np2\n1\nloc0\n")
	writeFile(t, stem+".intervals", "0 2\n")
	writeFile(t, stem+".data", "0 110 +\n0 100 -\n")
	writeFile(t, stem+".horn", "0 -> 1\n")

	st, attrs, err := LoadStore(stem)
	require.NoError(t, err)
	require.Equal(t, 2, len(st.Points))
	require.Equal(t, []string{"p0", "p1", "p2"}, attrs.PredNames)
	require.Equal(t, []z.Interval{{Lo: 0, Hi: 2}}, st.Intervals)
}

func TestReadHornRejectsMissingArrow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.horn")
	writeFile(t, path, "0 1 2\n")

	_, err := ReadHorn(path)
	require.Error(t, err)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
