// SPDX-License-Identifier: MIT

// Package tensor - dense round-trip (nested slices ⇄ Sparse).
//
// Purpose:
//   - ToDense materializes the derived shape as nested []any with float64 leaves.
//   - FromDense accepts any rectangular tree of slices/arrays with numeric leaves
//     ([]any, [][][]float64, [][]int, ...) and stores every cell, zeros included.
//
// Contract:
//   - Rank is the depth of the first-element chain; an empty list ends the chain
//     without adding a level, so [] has depth 0.
//   - Jagged rows, scalars above the leaf level, lists at the leaf level,
//     non-numeric leaves and depth 0 are rejected with ErrMalformedDense.
//   - Cells are inserted in row-major order, which becomes the entry order.
//
// Complexity:
//   - ToDense: O(Π shape + nnz·r).  FromDense: O(cells·r).

package tensor

import (
	"reflect"
)

// ToDense returns the tensor as nested []any of depth Rank whose outer
// lengths equal Shape. Absent coordinates are 0. An empty tensor yields an
// empty []any.
func (s *Sparse) ToDense() []any {
	shape := s.Shape()
	if len(shape) == 0 {
		return []any{}
	}
	root := newNested(shape)
	for i := range s.coords {
		setNested(root, s.coords[i][:s.rank], s.values[i])
	}

	return root
}

// newNested allocates a zero-filled nested list of the given shape.
func newNested(shape []int) []any {
	out := make([]any, shape[0])
	for i := range out {
		if len(shape) == 1 {
			out[i] = 0.0
		} else {
			out[i] = newNested(shape[1:])
		}
	}

	return out
}

// setNested writes v at coord inside a list built by newNested.
func setNested(list []any, coord []int, v float64) {
	for len(coord) > 1 {
		list = list[coord[0]].([]any)
		coord = coord[1:]
	}
	list[coord[0]] = v
}

// FromDense builds a tensor from a rectangular nested structure.
// MAIN DESCRIPTION:
//   - Inverse of ToDense for every non-empty rectangular input.
//
// Implementation:
//   - Stage 1: measure axis lengths along the first-element chain (rank = depth).
//   - Stage 2: walk the tree depth-first, checking every list against the
//     measured length of its level and every leaf for a numeric kind.
//   - Stage 3: Set each cell in row-major order under the resolved numeric policy.
//
// Errors:
//   - ErrMalformedDense for any structural violation, ErrBadRank when the depth
//     exceeds MaxRank, ErrNaNInf from the numeric policy.
//
// Complexity:
//   - Time O(cells·r), Space O(cells).
func FromDense(nested any, opts ...Option) (*Sparse, error) {
	root := unwrap(reflect.ValueOf(nested))
	dims := denseDims(root)
	if len(dims) == 0 {
		return nil, tensorErrorf(ctxFromDense, ErrMalformedDense, "no list level found (depth 0)")
	}
	if len(dims) > MaxRank {
		return nil, tensorErrorf(ctxFromDense, ErrBadRank, "depth %d exceeds %d", len(dims), MaxRank)
	}

	cells := 1
	for _, d := range dims {
		cells *= d
	}
	t, err := New(len(dims), append([]Option{WithCapacity(cells)}, opts...)...)
	if err != nil {
		return nil, err
	}
	coord := make([]int, len(dims))
	if err = t.fillDense(root, dims, 0, coord); err != nil {
		return nil, err
	}

	return t, nil
}

// denseDims follows element 0 down the tree and records each list length.
// An empty list stops the walk without contributing a level.
func denseDims(v reflect.Value) []int {
	var dims []int
	for isList(v) && v.Len() > 0 {
		dims = append(dims, v.Len())
		v = unwrap(v.Index(0))
	}

	return dims
}

// fillDense stores the subtree v rooted at coord[:depth].
func (s *Sparse) fillDense(v reflect.Value, dims []int, depth int, coord []int) error {
	if depth == len(dims) {
		f, ok := numeric(v)
		if !ok {
			return tensorErrorf(ctxFromDense, ErrMalformedDense, "leaf at %v is not a number", coord)
		}

		return s.Set(coord, f)
	}
	if !isList(v) {
		return tensorErrorf(ctxFromDense, ErrMalformedDense, "expected list at %v (level %d)", coord[:depth], depth)
	}
	if v.Len() != dims[depth] {
		return tensorErrorf(ctxFromDense, ErrMalformedDense,
			"list at %v (level %d) has length %d, want %d", coord[:depth], depth, v.Len(), dims[depth])
	}
	for i := 0; i < dims[depth]; i++ {
		coord[depth] = i
		if err := s.fillDense(unwrap(v.Index(i)), dims, depth+1, coord); err != nil {
			return err
		}
	}

	return nil
}

// unwrap strips interface boxing ([]any elements).
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

// isList reports whether v is a slice or an array.
func isList(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	k := v.Kind()

	return k == reflect.Slice || k == reflect.Array
}

// numeric converts integer and floating-point kinds to float64.
func numeric(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}
