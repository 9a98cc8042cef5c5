// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the null-space kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIntegerBasis scales every null-space basis vector to its smallest
	// integral positive multiple (see Vector.ScaleToIntegers). When false the
	// raw free-variable parametrization is returned (free entry exactly 1,
	// pivot entries possibly fractional).
	DefaultIntegerBasis = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	integerBasis bool // DefaultIntegerBasis
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{integerBasis: DefaultIntegerBasis}
}

// WithIntegerBasis toggles integral scaling of null-space basis vectors.
func WithIntegerBasis(enabled bool) Option {
	return func(o *Options) { o.integerBasis = enabled }
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// IntegerBasis reports the resolved integer-scaling policy for opts.
func IntegerBasis(opts ...Option) bool {
	return gatherOptions(opts...).integerBasis
}
