// SPDX-License-Identifier: MIT

// Package tensor - comparisons and gonum interop.
//
// Equal is exact; AllClose follows the usual |a-b| ≤ atol or relative ≤ rtol rule
// (gonum scalar.EqualWithinAbsOrRel) and is what tests of summed contractions
// should use, since bit-level results depend on accumulation order.

package tensor

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for AllClose callers that have no better choice.
const (
	DefaultRTol = 1e-9
	DefaultATol = 1e-12
)

// Equal reports whether a and b have the same rank and read the same value at
// every coordinate stored in either of them (absent reads as 0).
// Explicitly stored zeros are therefore equal to absent coordinates.
func Equal(a, b *Sparse) bool {
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}

// AllClose compares a and b element-wise within tolerance.
// Implementation:
//   - Stage 1: reject nil operands (ErrNilTensor) and rank differences (ErrRankMismatch).
//   - Stage 2: check every coordinate of a against b, then the coordinates only b stores.
//
// Returns:
//   - true when every compared pair satisfies scalar.EqualWithinAbsOrRel(x, y, atol, rtol).
//
// Complexity:
//   - Time O((nnz(a)+nnz(b))·r).
func AllClose(a, b *Sparse, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, tensorErrorf(ctxAllClose, ErrNilTensor, "operand is nil")
	}
	if a.rank != b.rank {
		return false, tensorErrorf(ctxAllClose, ErrRankMismatch, "rank %d vs %d", a.rank, b.rank)
	}
	near := func(x, y float64) bool {
		if x == y {
			return true
		}

		return scalar.EqualWithinAbsOrRel(x, y, atol, rtol)
	}
	for i, k := range a.coords {
		var y float64
		if pos, ok := b.index[k]; ok {
			y = b.values[pos]
		}
		if !near(a.values[i], y) {
			return false, nil
		}
	}
	for i, k := range b.coords {
		if _, ok := a.index[k]; ok {
			continue
		}
		if !near(0, b.values[i]) {
			return false, nil
		}
	}

	return true, nil
}

// ToMatrix exports a rank-2 tensor as a gonum *mat.Dense of the derived shape.
// Method 1 on two rank-3 operands is the contraction that yields rank 2.
//
// Errors:
//   - ErrRankMismatch when the rank is not 2, ErrEmpty when nothing is stored.
func (s *Sparse) ToMatrix() (*mat.Dense, error) {
	if s.rank != 2 {
		return nil, tensorErrorf(ctxToMatrix, ErrRankMismatch, "rank %d, want 2", s.rank)
	}
	shape := s.Shape()
	if len(shape) == 0 {
		return nil, tensorErrorf(ctxToMatrix, ErrEmpty, "no entries")
	}
	m := mat.NewDense(shape[0], shape[1], nil)
	for i, k := range s.coords {
		m.Set(k[0], k[1], s.values[i])
	}

	return m, nil
}
