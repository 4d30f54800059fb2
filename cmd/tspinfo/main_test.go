package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplib/tsplib"
)

var testdata = filepath.Join("..", "..", "tsplib", "testdata")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestHeaderText(t *testing.T) {
	out, err := run(t, "header", filepath.Join(testdata, "full3.tsp"))
	require.NoError(t, err)
	assert.Contains(t, out, "DIMENSION: 3\n")
	assert.Contains(t, out, "EDGE_WEIGHT_FORMAT: FULL_MATRIX\n")
	assert.Contains(t, out, "coordinates: false\n")
}

func TestHeaderJSON(t *testing.T) {
	out, err := run(t, "header", "--json", filepath.Join(testdata, "gr5.tsp"))
	require.NoError(t, err)

	var view headerView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "gr5", view.Name)
	assert.Equal(t, 5, view.Dimension)
	assert.Equal(t, "LOWER_DIAG_ROW", view.Format)
	assert.True(t, view.HasCoordinates)
	assert.Equal(t, "TWOD_DISPLAY", view.Entries[tsplib.KeyDisplayDataType])
}

func TestMatrix(t *testing.T) {
	out, err := run(t, "matrix", filepath.Join(testdata, "crlf.tsp"))
	require.NoError(t, err)
	assert.Equal(t, "[0, 12]\n[12, 0]\n", out)

	out, err = run(t, "matrix", "--json", filepath.Join(testdata, "crlf.tsp"))
	require.NoError(t, err)
	var table [][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, [][]float64{{0, 12}, {12, 0}}, table)
}

func TestMatrixCheckSymmetry(t *testing.T) {
	_, err := run(t, "matrix", filepath.Join(testdata, "full3.tsp"))
	require.NoError(t, err)

	_, err = run(t, "matrix", "--check-symmetry", filepath.Join(testdata, "full3.tsp"))
	require.ErrorIs(t, err, tsplib.ErrAsymmetricMatrix)

	_, err = run(t, "matrix", "--check-symmetry", "--tolerance", "0.5", filepath.Join(testdata, "full3.tsp"))
	require.ErrorIs(t, err, tsplib.ErrAsymmetricMatrix)

	_, err = run(t, "matrix", "--check-symmetry", "--tolerance", "1", filepath.Join(testdata, "full3.tsp"))
	require.NoError(t, err)

	_, err = run(t, "matrix", "--check-symmetry", "--tolerance", "-1", filepath.Join(testdata, "full3.tsp"))
	require.ErrorContains(t, err, "--tolerance")
}

func TestCoords(t *testing.T) {
	out, err := run(t, "coords", filepath.Join(testdata, "gr5.tsp"))
	require.NoError(t, err)
	assert.Equal(t, "1 0 0\n2 3 0\n3 2 4\n4 1 2\n5 5 3.5\n", out)

	_, err = run(t, "coords", filepath.Join(testdata, "full3.tsp"))
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "header", filepath.Join(testdata, "nope.tsp"))
	require.ErrorIs(t, err, tsplib.ErrRead)

	_, err = run(t, "header")
	require.Error(t, err)
}
