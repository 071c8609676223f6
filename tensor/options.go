// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for tensor construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: option constructors panic only on nonsensical values.
//
// Notes:
//   - The numeric policy travels with the tensor: Clone keeps it, FromDense
//     applies the options it is given.
//   - Contraction outputs are always created WithNoValidateNaNInf so that an
//     overflowing product never aborts a contraction mid-way.
package tensor

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// MaxRank is the largest supported rank. Contraction outputs reach rank 7
	// (method 4 on two rank-4 operands).
	MaxRank = 8

	// DefaultValidateNaNInf toggles finite-value validation on Set and Add.
	DefaultValidateNaNInf = true

	// DefaultCapacity is the initial entry capacity hint.
	DefaultCapacity = 0
)

const (
	panicCapacityInvalid = "tensor: WithCapacity: n must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	capacity       int  // DefaultCapacity
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Set and Add.
// Use for computed tensors whose values may legitimately overflow.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// WithCapacity pre-sizes the entry storage for n entries.
// Panics when n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *options) { o.capacity = n }
}

// gatherOptions resolves defaults and applies opts in order (last wins).
func gatherOptions(opts ...Option) options {
	o := options{
		validateNaNInf: DefaultValidateNaNInf,
		capacity:       DefaultCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
