// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound indicates that no tensor is stored under the name.
	ErrNotFound = errors.New("store: tensor not found")
	// ErrBadName indicates an empty, too long or ill-formed name.
	ErrBadName = errors.New("store: invalid tensor name")
	// ErrCorrupt indicates a stored value that does not decode to a tensor.
	ErrCorrupt = errors.New("store: corrupt record")
	// ErrNilTensor indicates a Put of a nil tensor.
	ErrNilTensor = errors.New("store: nil tensor")
)
