package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsplib/matrix"
	"github.com/stretchr/testify/require"
)

func TestWithEpsilonLastWriterWins(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1.5))

	require.ErrorIs(t, matrix.ValidateSymmetric(m, matrix.WithEpsilon(1), matrix.WithEpsilon(0.1)), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, matrix.WithEpsilon(0.1), matrix.WithEpsilon(0.5)))
}

func TestWithEpsilonPanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
}
