// SPDX-License-Identifier: MIT
// Package: lvtensor/builder
//
// shape.go - shape text and row-major enumeration.

package builder

import (
	"strconv"
	"strings"
)

// ParseShape reads "2,2,2", "2x2x2" or "2 x 3" into []int and validates it
// like the constructors do.
//
// Errors:
//   - ErrBadShape for empty text, non-integer parts or an invalid shape.
func ParseShape(s string) ([]int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, builderErrorf(MethodParseShape, ErrBadShape, "empty shape")
	}
	parts := strings.Split(strings.NewReplacer("x", ",", "×", ",").Replace(s), ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, builderErrorf(MethodParseShape, ErrBadShape, "axis %q is not an integer", p)
		}
		shape = append(shape, n)
	}
	if _, err := validateShape(MethodParseShape, shape); err != nil {
		return nil, err
	}

	return shape, nil
}

// FormatShape renders a shape as "2x2x2"; an empty shape renders as "0".
func FormatShape(shape []int) string {
	if len(shape) == 0 {
		return "0"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}

	return strings.Join(parts, "x")
}

// forEachCell calls fn for every coordinate of shape in row-major order,
// stopping at the first error. coord is reused between calls.
// Complexity: O(cells·r).
func forEachCell(shape []int, fn func(coord []int) error) error {
	coord := make([]int, len(shape))
	for {
		if err := fn(coord); err != nil {
			return err
		}
		axis := len(shape) - 1
		for ; axis >= 0; axis-- {
			coord[axis]++
			if coord[axis] < shape[axis] {
				break
			}
			coord[axis] = 0
		}
		if axis < 0 {
			return nil
		}
	}
}
