package notation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtensor/notation"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

func TestParseNestedAccepts(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want any
	}{
		{"flat", "[1, 2, 3]", []any{1.0, 2.0, 3.0}},
		{"semicolon rows", "[[1, 2]; [3, 4]]", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}},
		{"mixed separators", "[[1; 2], [3, 4]]", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}},
		{"empty", "[ ]", []any{}},
		{"numbers", "[-1.5, +2, 1e-3, .5]", []any{-1.5, 2.0, 0.001, 0.5}},
		{
			"comments and newlines",
			"# A tensor\n[[1, 2]; # first row\n [3, 4]]\n# done",
			[]any{[]any{1.0, 2.0}, []any{3.0, 4.0}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := notation.ParseNested(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseNestedRejects(t *testing.T) {
	bad := []string{
		"",
		"# only a comment",
		"[1, 2",
		"[1, 2]]",
		"[1,, 2]",
		"[1, 2,]",
		"[, 1]",
		"[1 2]",
		"[1, two]",
		"[[1]] extra",
		"]",
	}
	for _, in := range bad {
		_, err := notation.ParseNested(in)
		require.ErrorIs(t, err, notation.ErrSyntax, "%q", in)
	}

	_, err := notation.ParseNested("  42 # scalar")
	require.ErrorIs(t, err, notation.ErrNotList)
}

func TestParseDecimalComma(t *testing.T) {
	got, err := notation.ParseNested("[1,5; 2,25]", notation.WithDecimalComma())
	require.NoError(t, err)
	require.Equal(t, []any{1.5, 2.25}, got)

	// off by default: the same text is a four-element list
	got, err = notation.ParseNested("[1,5; 2,25]")
	require.NoError(t, err)
	require.Equal(t, []any{1.0, 5.0, 2.0, 25.0}, got)
}

func TestParseTensor(t *testing.T) {
	s, err := notation.Parse("[[[1, 2]; [3, 4]], [[5, 6]; [7, 8]]]")
	require.NoError(t, err)
	require.Equal(t, 3, s.Rank())
	require.Equal(t, []int{2, 2, 2}, s.Shape())
	require.Equal(t, 7.0, s.Get([]int{1, 1, 0}))

	_, err = notation.Parse("[[1, 2]; [3]]")
	require.ErrorIs(t, err, tensor.ErrMalformedDense)
	_, err = notation.Parse("[]")
	require.ErrorIs(t, err, tensor.ErrMalformedDense)
	_, err = notation.Parse("[NaN]")
	require.ErrorIs(t, err, tensor.ErrNaNInf)

	s, err = notation.Parse("[NaN]", notation.WithTensorOptions(tensor.WithNoValidateNaNInf()))
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}

// TestFormatParseRoundTrip checks Parse(Format(t)) == t after rounding to two decimals.
func TestFormatParseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, shape := range [][]int{{2, 3, 2}, {2, 2, 2, 3}, {1, 1, 1}} {
		s := tensor.MustNew(len(shape))
		coord := make([]int, len(shape))
		var fill func(axis int)
		fill = func(axis int) {
			if axis == len(shape) {
				v := float64(rng.Intn(2000)-1000) / 100
				require.NoError(t, s.Set(coord, v))

				return
			}
			for i := 0; i < shape[axis]; i++ {
				coord[axis] = i
				fill(axis + 1)
			}
		}
		fill(0)

		back, err := notation.Parse(notation.Format(s))
		require.NoError(t, err)
		ok, err := tensor.AllClose(s, back, 0, 1e-9)
		require.NoError(t, err)
		require.True(t, ok, "shape %v", shape)
		require.Equal(t, s.Shape(), back.Shape())
	}
}
