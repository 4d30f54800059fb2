// SPDX-License-Identifier: MIT

package tsplib

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "tsplib: ". Parse wraps them
// in *ParseError; match with errors.Is.
var (
	// ErrRead reports a failure of the underlying reader other than end of stream.
	ErrRead = errors.New("tsplib: read failed")

	// ErrMalformedLine is returned for a line that does not start with a key,
	// or a section marker followed by stray text.
	ErrMalformedLine = errors.New("tsplib: malformed line")

	// ErrSpecificationInData is returned for a KEY: value line after the first section marker.
	ErrSpecificationInData = errors.New("tsplib: specification found in data section")

	// ErrUnsupportedKey is returned for an unknown specification key.
	ErrUnsupportedKey = errors.New("tsplib: unsupported field")

	// ErrUnsupportedSection is returned for an unknown data section marker.
	ErrUnsupportedSection = errors.New("tsplib: unsupported section")

	// ErrInvalidValue is returned when a known key carries a disallowed value.
	ErrInvalidValue = errors.New("tsplib: invalid field value")

	// ErrInvalidDimension is returned when DIMENSION is not a positive integer.
	ErrInvalidDimension = errors.New("tsplib: invalid dimension")

	// ErrDuplicateEntry reports a specification key declared twice. Parse only
	// returns it under WithStrictEntries.
	ErrDuplicateEntry = errors.New("tsplib: duplicate field")

	// ErrDuplicateSection is returned when a data section appears twice.
	ErrDuplicateSection = errors.New("tsplib: duplicate section")

	// ErrMissingEntry is returned when a section needs a field that was never declared.
	ErrMissingEntry = errors.New("tsplib: field not defined")

	// ErrUnsupportedFormat is returned for an EDGE_WEIGHT_FORMAT other than
	// FULL_MATRIX, UPPER_ROW or LOWER_DIAG_ROW.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported edge weight format")

	// ErrDisplayTypeMismatch is returned when DISPLAY_DATA_SECTION is read
	// while DISPLAY_DATA_TYPE is not TWOD_DISPLAY.
	ErrDisplayTypeMismatch = errors.New("tsplib: display data type does not allow a display section")

	// ErrTruncatedSection is returned when the input ends inside a data section.
	ErrTruncatedSection = errors.New("tsplib: unexpected end of data section")

	// ErrBadToken is returned for a token that is not a valid finite number.
	ErrBadToken = errors.New("tsplib: invalid numeric token")

	// ErrInvalidNode is returned for a display node id outside [1, DIMENSION].
	ErrInvalidNode = errors.New("tsplib: invalid node in display data section")

	// ErrDuplicateNode is returned when a display node id repeats.
	ErrDuplicateNode = errors.New("tsplib: duplicate node in display data section")

	// ErrAsymmetricMatrix is returned by WithSymmetryCheck when a FULL_MATRIX is not symmetric.
	ErrAsymmetricMatrix = errors.New("tsplib: full matrix is not symmetric")

	// ErrMissingEOF is returned when the input ends without the EOF line.
	ErrMissingEOF = errors.New("tsplib: missing EOF terminator")

	// ErrNoDistanceMatrix is returned when EOF is reached without an EDGE_WEIGHT_SECTION.
	ErrNoDistanceMatrix = errors.New("tsplib: distance matrix not defined")

	// ErrValueKind is returned by typed accessors when the stored kind differs.
	ErrValueKind = errors.New("tsplib: value kind mismatch")
)

// ParseError carries the position of a parse failure.
// Line is the 1-based line being read when the failure occurred and Entry
// is the last header or section line seen before it (empty if none).
type ParseError struct {
	Line  int
	Entry string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d (last entry %q): %v", e.Line, e.Entry, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// positionErrorf wraps err with the matrix cell being filled.
func positionErrorf(err error, row, col int) error {
	return fmt.Errorf("%w at row %d, col %d", err, row, col)
}
