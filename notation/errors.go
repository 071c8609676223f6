// SPDX-License-Identifier: MIT
// Package: lvtensor/notation
//
// errors.go - sentinel errors for the notation package.
//
// Callers branch with errors.Is; context (byte offset, found token) is
// attached with %w at the detection site.

package notation

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates text that is not valid bracket notation.
var ErrSyntax = errors.New("notation: syntax error")

// ErrNotList indicates well-formed text whose top level is a scalar.
var ErrNotList = errors.New("notation: top level is not a list")

// syntaxErrorf reports a syntax violation at byte offset off.
func syntaxErrorf(off int, format string, args ...any) error {
	return fmt.Errorf("offset %d: %s: %w", off, fmt.Sprintf(format, args...), ErrSyntax)
}
