// Package tensor_test contains unit tests for the Sparse tensor.
package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestNewBadRank ensures New rejects ranks outside [1, MaxRank].
func TestNewBadRank(t *testing.T) {
	_, err := tensor.New(0)
	require.ErrorIs(t, err, tensor.ErrBadRank)

	_, err = tensor.New(tensor.MaxRank + 1)
	require.ErrorIs(t, err, tensor.ErrBadRank)

	require.Panics(t, func() { tensor.MustNew(-1) })
}

// TestSetGet validates Set followed by Get, and the zero default for absent coordinates.
func TestSetGet(t *testing.T) {
	s := tensor.MustNew(3)
	require.NoError(t, s.Set([]int{0, 1, 2}, 7.5))

	require.Equal(t, 7.5, s.Get([]int{0, 1, 2}))
	require.Equal(t, 0.0, s.Get([]int{2, 1, 0}))  // absent
	require.Equal(t, 0.0, s.Get([]int{0, 1}))     // wrong length never fails
	require.Equal(t, 0.0, s.Get([]int{-1, 0, 0})) // negative never fails
	require.Equal(t, 3, s.Rank())
	require.Equal(t, 1, s.Len())
}

// TestSetValidation ensures Set reports rank, sign and numeric-policy violations.
func TestSetValidation(t *testing.T) {
	s := tensor.MustNew(3)

	require.ErrorIs(t, s.Set([]int{0, 0}, 1), tensor.ErrRankMismatch)
	require.ErrorIs(t, s.Set([]int{0, 0, 0, 0}, 1), tensor.ErrRankMismatch)
	require.ErrorIs(t, s.Set([]int{0, -1, 0}, 1), tensor.ErrNegativeIndex)
	require.ErrorIs(t, s.Set([]int{0, 0, 0}, math.NaN()), tensor.ErrNaNInf)
	require.ErrorIs(t, s.Set([]int{0, 0, 0}, math.Inf(-1)), tensor.ErrNaNInf)
	require.Equal(t, 0, s.Len(), "failed writes must not store anything")

	relaxed := tensor.MustNew(3, tensor.WithNoValidateNaNInf())
	require.NoError(t, relaxed.Set([]int{0, 0, 0}, math.Inf(1)))
	require.True(t, math.IsInf(relaxed.Get([]int{0, 0, 0}), 1))
}

// TestOverwriteKeepsOrder checks overwrite semantics and stable insertion order.
func TestOverwriteKeepsOrder(t *testing.T) {
	s := tensor.MustNew(3)
	require.NoError(t, s.Set([]int{1, 0, 0}, 1))
	require.NoError(t, s.Set([]int{0, 0, 0}, 2))
	require.NoError(t, s.Set([]int{1, 0, 0}, 3)) // overwrite the first coordinate

	entries := s.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, []int{1, 0, 0}, entries[0].Coord)
	require.Equal(t, 3.0, entries[0].Value)
	require.Equal(t, []int{0, 0, 0}, entries[1].Coord)
	require.Equal(t, 2.0, entries[1].Value)
}

// TestEntriesAreCopies ensures callers cannot corrupt the tensor through Entries.
func TestEntriesAreCopies(t *testing.T) {
	s := tensor.MustNew(3)
	require.NoError(t, s.Set([]int{0, 1, 0}, 4))

	entries := s.Entries()
	entries[0].Coord[1] = 9
	require.Equal(t, 4.0, s.Get([]int{0, 1, 0}))
	require.Equal(t, 0.0, s.Get([]int{0, 9, 0}))
}

// TestAdd accumulates into present and absent coordinates.
func TestAdd(t *testing.T) {
	s := tensor.MustNew(2)
	require.NoError(t, s.Add([]int{0, 0}, 1.5))
	require.NoError(t, s.Add([]int{0, 0}, 2.5))
	require.NoError(t, s.Add([]int{1, 1}, -1))

	require.Equal(t, 4.0, s.Get([]int{0, 0}))
	require.Equal(t, -1.0, s.Get([]int{1, 1}))
	require.Equal(t, 2, s.Len())

	big := tensor.MustNew(1)
	require.NoError(t, big.Add([]int{0}, math.MaxFloat64))
	require.ErrorIs(t, big.Add([]int{0}, math.MaxFloat64), tensor.ErrNaNInf)
	require.Equal(t, math.MaxFloat64, big.Get([]int{0}), "rejected sum leaves the old value")
}

// TestShape verifies the derived shape, including the empty case.
func TestShape(t *testing.T) {
	s := tensor.MustNew(3)
	require.Empty(t, s.Shape())

	require.NoError(t, s.Set([]int{0, 4, 1}, 1))
	require.NoError(t, s.Set([]int{2, 0, 0}, 0)) // explicit zero still counts
	require.Equal(t, []int{3, 5, 2}, s.Shape())
}

// TestEachStops verifies ordered iteration and early termination.
func TestEachStops(t *testing.T) {
	s := tensor.MustNew(1)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Set([]int{4 - i}, float64(i)))
	}

	var seen []float64
	s.Each(func(coord []int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{0, 1, 2}, seen)
}

// TestHas distinguishes stored zeros from absent coordinates.
func TestHas(t *testing.T) {
	s := tensor.MustNew(2)
	require.NoError(t, s.Set([]int{0, 1}, 0))

	require.True(t, s.Has([]int{0, 1}))
	require.False(t, s.Has([]int{1, 0}))
	require.False(t, s.Has([]int{0}))
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	s := tensor.MustNew(3)
	require.NoError(t, s.Set([]int{0, 0, 0}, 1))

	c := s.Clone()
	require.NoError(t, c.Set([]int{0, 0, 0}, 5))
	require.NoError(t, c.Set([]int{1, 1, 1}, 6))

	require.Equal(t, 1.0, s.Get([]int{0, 0, 0}))
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, c.Len())
}

// TestString prints a short summary.
func TestString(t *testing.T) {
	s := tensor.MustNew(3)
	require.NoError(t, s.Set([]int{1, 0, 0}, 1))
	require.Equal(t, "Sparse(rank=3, nnz=1, shape=[2 1 1])", s.String())

	var nilTensor *tensor.Sparse
	require.Equal(t, "Sparse(nil)", nilTensor.String())
}
