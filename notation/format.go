// SPDX-License-Identifier: MIT
// Package: lvtensor/notation
//
// format.go - canonical rendering.

package notation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/lvtensor/tensor"
)

// Format renders t's dense form. A nil or empty tensor renders as "[]".
func Format(t *tensor.Sparse) string {
	if t == nil {
		return "[]"
	}

	return FormatNested(t.ToDense())
}

// FormatNested renders a scalar or a tree of slices/arrays.
// The layout depth is measured along the first-element chain.
//
// Complexity: O(total elements + output length).
func FormatNested(v any) string {
	rv := unwrap(reflect.ValueOf(v))
	if !isList(rv) {
		return formatScalar(rv)
	}
	var sb strings.Builder
	writeLevel(&sb, rv, depthOf(rv), 0)

	return sb.String()
}

// writeLevel renders the list v found at nesting level `level` of a tree of depth dim.
func writeLevel(sb *strings.Builder, v reflect.Value, dim, level int) {
	if !isList(v) {
		sb.WriteString(formatScalar(v))

		return
	}
	n := v.Len()
	if n == 0 {
		sb.WriteString("[]")

		return
	}

	sep := ", "
	if level == dim-2 {
		sep = "; "
	}
	if level < dim-2 {
		indent := strings.Repeat("  ", level+1)
		sb.WriteString("[\n")
		for i := 0; i < n; i++ {
			sb.WriteString(indent)
			writeLevel(sb, unwrap(v.Index(i)), dim, level+1)
			if i < n-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("  ", level))
		sb.WriteByte(']')

		return
	}

	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeLevel(sb, unwrap(v.Index(i)), dim, level+1)
	}
	sb.WriteByte(']')
}

// depthOf counts list levels along element 0; an empty list counts as one level.
func depthOf(v reflect.Value) int {
	d := 0
	for isList(v) {
		d++
		if v.Len() == 0 {
			break
		}
		v = unwrap(v.Index(0))
	}

	return d
}

// formatScalar prints numbers with two decimals and anything else with %v.
func formatScalar(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", v.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%.2f", float64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%.2f", float64(v.Uint()))
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func isList(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}

	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}
