// SPDX-License-Identifier: MIT

// Package builder provides value distributions for Random.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn produces a cell value from the constructor's RNG.
// It must be deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) float64

// ConstantValueFn always yields value. Panics on NaN or ±Inf.
// Complexity: O(1).
func ConstantValueFn(value float64) ValueFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantValueFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn samples uniformly in [lo, hi). Panics unless lo < hi and
// both are finite.
// Complexity: O(1).
func UniformValueFn(lo, hi float64) ValueFn {
	if err := validateRange("UniformValueFn", lo, hi); err != nil {
		panic(err.Error())
	}
	span := hi - lo

	return func(rng *rand.Rand) float64 {
		return lo + rng.Float64()*span
	}
}

// NormalValueFn samples from N(mean, stddev). Panics if stddev < 0.
// Complexity: O(1).
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return rng.NormFloat64()*stddev + mean
	}
}

// resolveValueFn returns the configured ValueFn or UniformValueFn(lo, hi).
// The range must have been validated.
func (c builderConfig) resolveValueFn() ValueFn {
	if c.valueFn != nil {
		return c.valueFn
	}

	return UniformValueFn(c.lo, c.hi)
}
