// SPDX-License-Identifier: MIT
// Package: lvtensor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil                  (Random fails with ErrNeedRandSource)
//   • lo, hi     = 0, 10                (uniform values in [0,10))
//   • valueFn    = nil                  (resolved to UniformValueFn(lo, hi))
//   • precision  = 2 decimals
//   • density    = 1                    (every cell kept)

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvtensor/tensor"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng *rand.Rand

	// Value distribution. valueFn wins over [lo, hi) when set.
	lo, hi  float64
	valueFn ValueFn

	precision  int     // decimals kept by Random; negative disables rounding
	density    float64 // probability that a cell is stored
	tensorOpts []tensor.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lo:        DefaultLo,
		hi:        DefaultHi,
		precision: DefaultPrecision,
		density:   DefaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// round keeps cfg.precision decimals.
func (c builderConfig) round(v float64) float64 {
	if c.precision < 0 {
		return v
	}
	scale := math.Pow(10, float64(c.precision))

	return math.Round(v*scale) / scale
}
