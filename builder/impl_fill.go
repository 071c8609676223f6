// SPDX-License-Identifier: MIT
// Package: lvtensor/builder
//
// impl_fill.go - deterministic constructors Sequential and Filled.
//
// Both visit every coordinate in row-major order, need no RNG and ignore the
// value-distribution options (range, ValueFn, precision, density).

package builder

import (
	"github.com/katalvlaran/lvtensor/tensor"
)

// Sequential returns a tensor whose cells hold 1, 2, 3, … in row-major order:
// Sequential([]int{2, 2, 2}) is [[[1, 2]; [3, 4]], [[5, 6]; [7, 8]]].
// Complexity: O(cells·r).
func Sequential(shape []int, opts ...BuilderOption) (*tensor.Sparse, error) {
	next := 0.0

	return fill(MethodSequential, shape, func() float64 {
		next++

		return next
	}, opts)
}

// Filled returns a tensor whose every cell holds v. NaN or ±Inf is rejected by
// the tensor's default validation (tensor.ErrNaNInf).
// Complexity: O(cells·r).
func Filled(shape []int, v float64, opts ...BuilderOption) (*tensor.Sparse, error) {
	return fill(MethodFilled, shape, func() float64 { return v }, opts)
}

// fill stores gen() at every coordinate of shape.
func fill(method string, shape []int, gen func() float64, opts []BuilderOption) (*tensor.Sparse, error) {
	cfg := newBuilderConfig(opts...)
	cells, err := validateShape(method, shape)
	if err != nil {
		return nil, err
	}
	out, err := tensor.New(len(shape), append([]tensor.Option{tensor.WithCapacity(cells)}, cfg.tensorOpts...)...)
	if err != nil {
		return nil, err
	}
	if err = forEachCell(shape, func(coord []int) error { return out.Set(coord, gen()) }); err != nil {
		return nil, builderErrorf(method, err, "fill")
	}

	return out, nil
}
