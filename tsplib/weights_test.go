package tsplib

import (
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/tsplib/matrix"
	"github.com/stretchr/testify/require"
)

// sliceTokens feeds a fixed token list to the section readers.
type sliceTokens struct{ toks []string }

func tokens(s string) *sliceTokens { return &sliceTokens{toks: strings.Fields(s)} }

func (s *sliceTokens) nextToken() (string, error) {
	if len(s.toks) == 0 {
		return "", io.EOF
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]

	return tok, nil
}

// rows materialises m for comparison.
func rows(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

func TestReadEdgeWeightsFullMatrixKeepsInputAsIs(t *testing.T) {
	src := tokens("0 1 2  3 0 4  5 6 0")
	m, err := readEdgeWeights(src, FullMatrix, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 2}, {3, 0, 4}, {5, 6, 0}}, rows(t, m))
	require.Empty(t, src.toks)
}

func TestReadEdgeWeightsFullMatrixDiagonalFromInput(t *testing.T) {
	m, err := readEdgeWeights(tokens("7 1 1 9"), FullMatrix, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 1}, {1, 9}}, rows(t, m))
}

func TestReadEdgeWeightsUpperRowMirrors(t *testing.T) {
	src := tokens("1 2 3 9")
	m, err := readEdgeWeights(src, UpperRow, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, rows(t, m))
	require.NoError(t, matrix.ValidateSymmetric(m))
	require.Equal(t, []string{"9"}, src.toks) // only n(n-1)/2 tokens consumed
}

func TestReadEdgeWeightsLowerDiagRowTakesDiagonal(t *testing.T) {
	m, err := readEdgeWeights(tokens("9 1 8 2 3 7"), LowerDiagRow, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 1, 2}, {1, 8, 3}, {2, 3, 7}}, rows(t, m))
	require.NoError(t, matrix.ValidateSymmetric(m))
}

func TestReadEdgeWeightsSingleNode(t *testing.T) {
	m, err := readEdgeWeights(tokens(""), UpperRow, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}}, rows(t, m))
}

func TestReadEdgeWeightsErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		format  EdgeWeightFormat
		n       int
		wantErr error
		wantMsg string
	}{
		{name: "truncated upper", src: "1 2", format: UpperRow, n: 3, wantErr: ErrTruncatedSection, wantMsg: "row 1, col 2"},
		{name: "truncated full", src: "", format: FullMatrix, n: 2, wantErr: ErrTruncatedSection, wantMsg: "row 0, col 0"},
		{name: "word", src: "1 x", format: FullMatrix, n: 2, wantErr: ErrBadToken, wantMsg: "row 0, col 1"},
		{name: "nan", src: "NaN", format: LowerDiagRow, n: 1, wantErr: ErrBadToken, wantMsg: "row 0, col 0"},
		{name: "inf", src: "1 +Inf", format: LowerDiagRow, n: 2, wantErr: ErrBadToken, wantMsg: "row 1, col 0"},
		{name: "unknown format", src: "1", format: FormatUnknown, n: 2, wantErr: ErrUnsupportedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := readEdgeWeights(tokens(tc.src), tc.format, tc.n)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, m)
			if tc.wantMsg != "" {
				require.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestParseEdgeWeightFormat(t *testing.T) {
	for _, f := range []EdgeWeightFormat{FullMatrix, UpperRow, LowerDiagRow} {
		got, err := ParseEdgeWeightFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	for _, name := range []string{"UPPER_COL", "LOWER_ROW", "full_matrix", ""} {
		_, err := ParseEdgeWeightFormat(name)
		require.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}

	require.Equal(t, "EdgeWeightFormat(9)", EdgeWeightFormat(9).String())
}
