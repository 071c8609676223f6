// SPDX-License-Identifier: MIT
// Package contract: sentinel error set.
// Errors are raised before any output tensor is allocated; no partial results.

package contract

import (
	"errors"

	"github.com/katalvlaran/lvtensor/tensor"
)

var (
	// ErrUnsupportedRankPairing indicates a (rank A, rank B) combination other
	// than (3,3), (4,4), (3,4), (4,3).
	ErrUnsupportedRankPairing = errors.New("contract: unsupported rank pairing")

	// ErrUnknownMethod indicates a method identifier outside 1..5.
	ErrUnknownMethod = errors.New("contract: unknown method")
)

// ErrNilTensor is returned when an operand is nil. It is the tensor package
// sentinel so errors.Is matches either name.
var ErrNilTensor = tensor.ErrNilTensor
