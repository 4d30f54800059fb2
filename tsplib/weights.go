// SPDX-License-Identifier: MIT

package tsplib

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/tsplib/matrix"
)

// readEdgeWeights allocates an n×n zero matrix and fills it from src using
// layout f.
//
// Layouts:
//   - FullMatrix: a[i][j] for all i, j in row-major order, stored as read.
//   - UpperRow: a[i][j] = a[j][i] for j > i; the diagonal stays 0.
//   - LowerDiagRow: a[i][j] = a[j][i] for j ≤ i; the diagonal comes from input.
//
// Errors: ErrUnsupportedFormat, ErrTruncatedSection, ErrBadToken, the latter
// two carrying the (row, col) being filled.
//
// Complexity: O(n²) time and space.
func readEdgeWeights(src tokenReader, f EdgeWeightFormat, n int) (*matrix.Dense, error) {
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}

	switch f {
	case FullMatrix:
		err = fillFull(src, m)
	case UpperRow:
		err = fillUpperRow(src, m)
	case LowerDiagRow:
		err = fillLowerDiagRow(src, m)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

func fillFull(src tokenReader, m *matrix.Dense) error {
	var (
		n    = m.Rows()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := readCell(src, m, i, j, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func fillUpperRow(src tokenReader, m *matrix.Dense) error {
	var (
		n    = m.Rows()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := readCell(src, m, i, j, true); err != nil {
				return err
			}
		}
	}

	return nil
}

func fillLowerDiagRow(src tokenReader, m *matrix.Dense) error {
	var (
		n    = m.Rows()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if err := readCell(src, m, i, j, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// readCell reads one number into (i, j) and, when mirror is set, into (j, i).
func readCell(src tokenReader, m *matrix.Dense, i, j int, mirror bool) error {
	v, err := readNumber(src)
	if err != nil {
		return positionErrorf(err, i, j)
	}
	if err = m.Set(i, j, v); err != nil {
		return positionErrorf(err, i, j)
	}
	if mirror && i != j {
		if err = m.Set(j, i, v); err != nil {
			return positionErrorf(err, j, i)
		}
	}

	return nil
}

// readNumber reads one finite float64 token.
func readNumber(src tokenReader) (float64, error) {
	tok, err := src.nextToken()
	if err != nil {
		return 0, sectionReadError(err)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q", ErrBadToken, tok)
	}

	return v, nil
}

// readInt reads one base-10 integer token.
func readInt(src tokenReader) (int, error) {
	tok, err := src.nextToken()
	if err != nil {
		return 0, sectionReadError(err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadToken, tok)
	}

	return v, nil
}

// sectionReadError maps end of stream inside a section to ErrTruncatedSection.
func sectionReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrTruncatedSection
	}

	return err
}
