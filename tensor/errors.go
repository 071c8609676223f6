// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All public operations return these sentinels (optionally wrapped with %w and
// call-site context); callers and tests match them with errors.Is.
// Panics are reserved for programmer errors in option constructors and MustNew.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRank is returned when a requested rank is outside [1, MaxRank].
	ErrBadRank = errors.New("tensor: rank out of range")

	// ErrRankMismatch indicates a coordinate or operand whose rank differs
	// from the one required (Set/Add coordinate length, AllClose, ToMatrix).
	ErrRankMismatch = errors.New("tensor: rank mismatch")

	// ErrNegativeIndex indicates a coordinate component below zero.
	ErrNegativeIndex = errors.New("tensor: negative index")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrMalformedDense indicates that a nested dense structure is not a
	// rectangular tree of numbers (jagged rows, mixed depths, non-numeric leaves).
	ErrMalformedDense = errors.New("tensor: malformed dense input")

	// ErrEmpty indicates an operation that needs at least one stored entry.
	ErrEmpty = errors.New("tensor: empty tensor")

	// ErrNilTensor indicates that a nil *Sparse was passed where a tensor is required.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// Method tags used in error wrappers.
const (
	ctxNew       = "New"
	ctxSet       = "Set"
	ctxAdd       = "Add"
	ctxFromDense = "FromDense"
	ctxAllClose  = "AllClose"
	ctxToMatrix  = "ToMatrix"
)

// tensorErrorf wraps err with a uniform "Sparse.<method>: <detail>: %w" context.
// The sentinel stays reachable through errors.Is.
func tensorErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("Sparse.%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
