// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for approximate comparisons.
//
// Design goals:
//   - No global state: every call resolves its own Options from ...Option.
//   - Safe by construction: With* constructors panic only on nonsensical values
//     (programmer error), never on data.
package linalg

import "math"

// DefaultEpsilon is the absolute tolerance used by AllClose and ApproxEqual
// when no WithEpsilon option is supplied.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "linalg: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the absolute tolerance for approximate comparisons.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the zero-config baseline.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies opts over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves opts into an Options value (exposed for callers that
// want to inspect the effective configuration).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
