package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestToDenseShape checks zero fill and nesting depth of ToDense.
func TestToDenseShape(t *testing.T) {
	s := tensor.MustNew(3)
	require.NoError(t, s.Set([]int{0, 0, 1}, 2))
	require.NoError(t, s.Set([]int{1, 1, 0}, 3))

	want := []any{
		[]any{[]any{0.0, 2.0}, []any{0.0, 0.0}},
		[]any{[]any{0.0, 0.0}, []any{3.0, 0.0}},
	}
	require.Equal(t, want, s.ToDense())

	require.Equal(t, []any{}, tensor.MustNew(4).ToDense())
}

// TestFromDenseTyped accepts typed nested slices and stores every cell in row-major order.
func TestFromDenseTyped(t *testing.T) {
	s, err := tensor.FromDense([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 0}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.Rank())
	require.Equal(t, 8, s.Len(), "zeros are stored too")
	require.Equal(t, []int{2, 2, 2}, s.Shape())
	require.Equal(t, 6.0, s.Get([]int{1, 0, 1}))

	entries := s.Entries()
	require.Equal(t, []int{0, 0, 0}, entries[0].Coord)
	require.Equal(t, []int{0, 0, 1}, entries[1].Coord)
	require.Equal(t, []int{1, 1, 1}, entries[7].Coord)

	ints, err := tensor.FromDense([][]int{{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ints.Shape())
	require.Equal(t, 3.0, ints.Get([]int{0, 2}))
}

// TestFromDenseMalformed covers every structural violation.
func TestFromDenseMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input any
	}{
		{"scalar", 3.0},
		{"nil", nil},
		{"empty", []any{}},
		{"jagged rows", []any{[]any{1.0, 2.0}, []any{3.0}}},
		{"jagged depth", []any{[]any{[]any{1.0}}, []any{[]any{2.0}, 3.0}}},
		{"scalar above leaves", []any{[]any{1.0, 2.0}, 3.0}},
		{"list at leaf level", []any{1.0, []any{2.0}}},
		{"non-numeric leaf", []any{[]any{"x", 1.0}}},
		{"empty inner lists", [][]float64{{}, {}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tensor.FromDense(tc.input)
			require.ErrorIs(t, err, tensor.ErrMalformedDense)
		})
	}
}

// TestFromDenseTooDeep rejects nesting deeper than MaxRank.
func TestFromDenseTooDeep(t *testing.T) {
	var v any = 1.0
	for i := 0; i < tensor.MaxRank+1; i++ {
		v = []any{v}
	}
	_, err := tensor.FromDense(v)
	require.ErrorIs(t, err, tensor.ErrBadRank)
}

// TestDenseRoundTrip verifies FromDense(ToDense(T)) reproduces T.
func TestDenseRoundTrip(t *testing.T) {
	full, err := tensor.FromDense([][][][]float64{
		{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}},
		{{{9, 10}, {11, 12}}, {{13, 14}, {15, 16}}},
	})
	require.NoError(t, err)

	back, err := tensor.FromDense(full.ToDense())
	require.NoError(t, err)
	require.Equal(t, full.Entries(), back.Entries(), "fully populated tensors round-trip entry for entry")

	sparse := tensor.MustNew(3)
	require.NoError(t, sparse.Set([]int{2, 0, 1}, 4))
	require.NoError(t, sparse.Set([]int{0, 1, 0}, -2))

	back, err = tensor.FromDense(sparse.ToDense())
	require.NoError(t, err)
	require.True(t, tensor.Equal(sparse, back))
	require.Equal(t, sparse.Shape(), back.Shape())
}
