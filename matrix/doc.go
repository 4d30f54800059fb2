// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-size two-dimensional storage used by
// tsplib instances.
//
// The package offers:
//
//   - Matrix, a small interface over a mutable r×c table of float64 values
//     with bounds-checked accessors that return errors instead of panicking.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Validators (square, symmetric within a tolerance) that report violations
//     through sentinel errors.
//
// Distance matrices are n×n and coordinate tables are n×2; both are
// allocated once per parse and never resized.
package matrix
