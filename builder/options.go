// SPDX-License-Identifier: MIT
// Package: lvtensor/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil RNG, nil ValueFn,
//     negative precision). Constructors themselves never panic.
//   • Values that usually come from users (density, value range) are stored
//     as given and validated by the constructor, which returns a sentinel error.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvtensor/tensor"
)

// BuilderOption customizes a constructor by mutating a builderConfig instance
// before the tensor is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity keeps each cell with probability p. Random rejects p outside
// [0,1] with ErrInvalidProbability.
func WithDensity(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithRange draws Random values uniformly from [lo, hi). Random rejects
// lo ≥ hi with ErrInvalidRange. Clears any WithValueFn set earlier.
func WithRange(lo, hi float64) BuilderOption {
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
		c.valueFn = nil
	}
}

// WithValueFn overrides the value distribution used by Random. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithPrecision rounds Random values to d decimals (0 ≤ d ≤ MaxPrecision).
// Panics outside that interval.
func WithPrecision(d int) BuilderOption {
	if d < 0 || d > MaxPrecision {
		panic("builder: WithPrecision(d) out of [0, MaxPrecision]")
	}
	return func(c *builderConfig) {
		c.precision = d
	}
}

// WithExactValues disables rounding of Random values.
func WithExactValues() BuilderOption {
	return func(c *builderConfig) {
		c.precision = -1
	}
}

// WithTensorOptions forwards options to tensor.New for the produced tensor.
func WithTensorOptions(opts ...tensor.Option) BuilderOption {
	return func(c *builderConfig) {
		c.tensorOpts = append(c.tensorOpts, opts...)
	}
}
