// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every option is consumed by fuzzy equality, the structural predicates
//     and the singularity check of Invert2/Invert3/Invert4.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute tolerance used by fuzzy equality, the
// Is* predicates and the singularity check.
const DefaultEpsilon = scalar.DefaultEpsilon

// ---------- Internal panic messages ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the absolute tolerance used by tolerance-based checks.
//
// Behavior highlights:
//   - eps == 0 turns every fuzzy comparison into an exact one.
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies opts in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
