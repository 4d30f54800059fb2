// SPDX-License-Identifier: MIT

// Package matrix - functional options for the structural validators.
//
// Defaults live in exported constants so that documentation and behaviour
// never diverge. Options are applied in order, last writer wins.
package matrix

import "math"

// DefaultEpsilon is the tolerance used by ValidateSymmetric (exact equality).
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error), never on user data.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0
}

// WithEpsilon sets the tolerance used by ValidateSymmetric.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
