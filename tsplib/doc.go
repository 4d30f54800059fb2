// SPDX-License-Identifier: MIT

// Package tsplib reads symmetric TSPLIB instances whose distances are given
// explicitly, i.e. EDGE_WEIGHT_TYPE: EXPLICIT.
//
// An input is a sequence of lines:
//
//	NAME: gr5
//	TYPE: TSP
//	DIMENSION: 3
//	EDGE_WEIGHT_TYPE: EXPLICIT
//	EDGE_WEIGHT_FORMAT: UPPER_ROW
//	DISPLAY_DATA_TYPE: TWOD_DISPLAY
//	EDGE_WEIGHT_SECTION
//	 4 7
//	 2
//	DISPLAY_DATA_SECTION
//	1 0.0 0.0
//	2 4.0 0.0
//	3 4.0 2.0
//	EOF
//
// The header ("specification") lines come first as KEY: value pairs. The
// first bare KEY line switches the reader into the data phase, after which
// header lines are rejected. Data sections are free-form runs of
// whitespace-separated numbers that may span any number of lines. Blank lines
// are ignored everywhere and a line that is exactly EOF ends the instance.
// A header key declared twice keeps its first value (see WithStrictEntries).
//
// Supported edge-weight layouts:
//
//   - FULL_MATRIX:    n·n values, row-major, stored as read (see WithSymmetryCheck).
//   - UPPER_ROW:      strict upper triangle, mirrored; diagonal stays 0.
//   - LOWER_DIAG_ROW: lower triangle including the diagonal, mirrored.
//
// Parse and ParseFile return a fully materialised *Instance or an error; no
// partially built instance is ever returned. Errors are *ParseError values
// wrapping one of the sentinels in errors.go, so callers can use errors.Is.
package tsplib
