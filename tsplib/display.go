// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"

	"github.com/katalvlaran/tsplib/matrix"
)

// readDisplayData reads n "id x y" triples into an n×2 matrix.
// Ids are 1-based and may come in any order; each of 1..n must appear
// exactly once.
//
// Errors: ErrInvalidNode (id outside [1, n]), ErrDuplicateNode,
// ErrTruncatedSection, ErrBadToken.
//
// Complexity: O(n) time and space.
func readDisplayData(src tokenReader, n int) (*matrix.Dense, error) {
	coords, err := matrix.NewDense(n, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	var visited = make([]bool, n)

	for k := 0; k < n; k++ {
		id, err := readInt(src)
		if err != nil {
			return nil, fmt.Errorf("%w (display entry %d)", err, k+1)
		}
		idx := id - 1
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: node %d outside [1, %d]", ErrInvalidNode, id, n)
		}
		if visited[idx] {
			return nil, fmt.Errorf("%w: node %d", ErrDuplicateNode, id)
		}
		x, err := readNumber(src)
		if err != nil {
			return nil, fmt.Errorf("%w (x of node %d)", err, id)
		}
		y, err := readNumber(src)
		if err != nil {
			return nil, fmt.Errorf("%w (y of node %d)", err, id)
		}
		if err = coords.Set(idx, 0, x); err != nil {
			return nil, err
		}
		if err = coords.Set(idx, 1, y); err != nil {
			return nil, err
		}
		visited[idx] = true
	}

	return coords, nil
}
