// SPDX-License-Identifier: MIT

package tsplib

import (
	"github.com/katalvlaran/tsplib/matrix"
	"github.com/tliron/commonlog"
)

const (
	// DefaultLoggerName is the commonlog name used when no logger is supplied.
	DefaultLoggerName = "tsplib"

	// DefaultMaxDimension caps DIMENSION unless WithMaxDimension says otherwise.
	// A 10000-node distance matrix already needs 800 MB.
	DefaultMaxDimension = 10000
)

// Option configures Parse and ParseFile.
type Option func(*options)

type options struct {
	logger        commonlog.Logger
	lenient       bool
	strictEntries bool
	checkSymmetry bool
	symmetryEps   matrix.Option
	maxDimension  int // <= 0 means no limit
}

// WithLogger routes debug traces to l instead of commonlog.GetLogger(DefaultLoggerName).
func WithLogger(l commonlog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLenientSeparator also accepts "KEY : value" and "KEY:value" header lines.
func WithLenientSeparator() Option {
	return func(o *options) { o.lenient = true }
}

// WithStrictEntries fails with ErrDuplicateEntry when a header key is
// declared twice. By default the first declaration wins and later ones
// are skipped.
func WithStrictEntries() Option {
	return func(o *options) { o.strictEntries = true }
}

// WithSymmetryCheck rejects a FULL_MATRIX section in which some pair
// differs by more than tol, i.e. |d(i,j) - d(j,i)| > tol. The other layouts
// are symmetric by construction.
// Panics when tol is negative, NaN or infinite.
func WithSymmetryCheck(tol float64) Option {
	eps := matrix.WithEpsilon(tol)

	return func(o *options) {
		o.checkSymmetry = true
		o.symmetryEps = eps
	}
}

// WithMaxDimension rejects instances declaring more than n nodes before
// any matrix is allocated. n <= 0 removes the limit.
func WithMaxDimension(n int) Option {
	return func(o *options) { o.maxDimension = n }
}

func gatherOptions(user ...Option) options {
	o := options{maxDimension: DefaultMaxDimension}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = commonlog.GetLogger(DefaultLoggerName)
	}

	return o
}
