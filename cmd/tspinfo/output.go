// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/tsplib/matrix"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// rowsOf copies m into a slice of rows for encoding.
func rowsOf(m *matrix.Dense) ([][]float64, error) {
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}
