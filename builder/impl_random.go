// SPDX-License-Identifier: MIT
// Package: lvtensor/builder
//
// impl_random.go - implementation of Random(shape, opts...).
//
// Canonical model:
//   - Visit every coordinate of shape in row-major order.
//   - With density p < 1, one Bernoulli trial per cell decides whether it is
//     stored; with p = 1 no trial is drawn.
//   - Stored values come from the ValueFn (default U[0,10)) rounded to the
//     configured precision (default 2 decimals). Zero draws are stored too.
//
// Contract:
//   - shape valid (else ErrBadShape); 0 ≤ p ≤ 1 (else ErrInvalidProbability);
//     lo < hi when no ValueFn is set (else ErrInvalidRange).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//
// Complexity:
//   - Time O(cells·r), Space O(stored cells).
//
// Determinism:
//   - Fixed trial order (row-major) and a single RNG stream: equal seeds and
//     options give equal tensors, entry order included.

package builder

import (
	"github.com/katalvlaran/lvtensor/tensor"
)

// Random returns a tensor of the given shape filled with random values.
func Random(shape []int, opts ...BuilderOption) (*tensor.Sparse, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early, in sentinel priority order.
	cells, err := validateShape(MethodRandom, shape)
	if err != nil {
		return nil, err
	}
	if err = validateProbability(MethodRandom, cfg.density); err != nil {
		return nil, err
	}
	if cfg.valueFn == nil {
		if err = validateRange(MethodRandom, cfg.lo, cfg.hi); err != nil {
			return nil, err
		}
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	// 2) Allocate for the expected number of stored cells.
	expected := int(float64(cells) * cfg.density)
	out, err := tensor.New(len(shape), append([]tensor.Option{tensor.WithCapacity(expected)}, cfg.tensorOpts...)...)
	if err != nil {
		return nil, err
	}

	// 3) Sample cells in row-major order.
	rng := cfg.rng
	valueFn := cfg.resolveValueFn()
	sparse := cfg.density < MaxProbability
	err = forEachCell(shape, func(coord []int) error {
		if sparse && rng.Float64() >= cfg.density {
			return nil
		}

		return out.Set(coord, cfg.round(valueFn(rng)))
	})
	if err != nil {
		return nil, builderErrorf(MethodRandom, err, "fill")
	}

	return out, nil
}
