// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce parameter contracts
// of the constructors. Each returns a sentinel wrapped via builderErrorf.
package builder

import (
	"math"

	"github.com/katalvlaran/lvtensor/tensor"
)

// validateShape checks 1 ≤ len(shape) ≤ tensor.MaxRank, every axis ≥ 1 and
// at most MaxCells cells. It returns the cell count.
//
// Complexity: O(len(shape)).
func validateShape(method string, shape []int) (int, error) {
	if len(shape) == 0 || len(shape) > tensor.MaxRank {
		return 0, builderErrorf(method, ErrBadShape, "rank %d not in [1,%d]", len(shape), tensor.MaxRank)
	}
	cells := 1
	for axis, d := range shape {
		if d < 1 {
			return 0, builderErrorf(method, ErrBadShape, "axis %d has length %d", axis, d)
		}
		if cells > MaxCells/d {
			return 0, builderErrorf(method, ErrBadShape, "shape %v exceeds %d cells", shape, MaxCells)
		}
		cells *= d
	}

	return cells, nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability,
			"density must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateRange enforces finite lo < hi.
func validateRange(method string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return builderErrorf(method, ErrInvalidRange, "need finite lo < hi, got [%g,%g)", lo, hi)
	}

	return nil
}
