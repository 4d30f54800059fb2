// SPDX-License-Identifier: MIT

package tsplib

import "fmt"

// EdgeWeightFormat is the layout of an EDGE_WEIGHT_SECTION.
type EdgeWeightFormat uint8

const (
	// FormatUnknown is the zero value; it never results from a successful parse.
	FormatUnknown EdgeWeightFormat = iota
	// FullMatrix lists all n·n entries row by row.
	FullMatrix
	// UpperRow lists the strict upper triangle row by row.
	UpperRow
	// LowerDiagRow lists the lower triangle, diagonal included, row by row.
	LowerDiagRow
)

var formatNames = [...]string{
	FormatUnknown: "UNKNOWN",
	FullMatrix:    "FULL_MATRIX",
	UpperRow:      "UPPER_ROW",
	LowerDiagRow:  "LOWER_DIAG_ROW",
}

func (f EdgeWeightFormat) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("EdgeWeightFormat(%d)", uint8(f))
}

// ParseEdgeWeightFormat maps a TSPLIB format name to its enumeration value.
// Names other than FULL_MATRIX, UPPER_ROW and LOWER_DIAG_ROW fail with
// ErrUnsupportedFormat.
func ParseEdgeWeightFormat(name string) (EdgeWeightFormat, error) {
	switch name {
	case "FULL_MATRIX":
		return FullMatrix, nil
	case "UPPER_ROW":
		return UpperRow, nil
	case "LOWER_DIAG_ROW":
		return LowerDiagRow, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}
