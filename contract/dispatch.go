// SPDX-License-Identifier: MIT

// Package contract - dispatcher.
//
// The kernel table is built once at package initialization from the method
// table and the supported rank pairs; it is read-only afterwards and safe for
// concurrent use.

package contract

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
)

// RankPair is an ordered (rank A, rank B) combination.
type RankPair struct {
	A, B int
}

// String returns e.g. "3x4".
func (p RankPair) String() string {
	return fmt.Sprintf("%dx%d", p.A, p.B)
}

// supportedPairs lists the rank pairings in table order.
var supportedPairs = [...]RankPair{{3, 3}, {4, 4}, {3, 4}, {4, 3}}

// kernelKey addresses one entry of the kernel table.
type kernelKey struct {
	method Method
	pair   RankPair
}

var (
	kernelTable = map[kernelKey]*Kernel{}
	kernelList  []*Kernel
)

func init() {
	for _, m := range Methods() {
		for _, p := range supportedPairs {
			k := newKernel(m, p.A, p.B)
			kernelTable[kernelKey{method: m, pair: p}] = k
			kernelList = append(kernelList, k)
		}
	}
}

// RankPairs returns the supported rank pairings.
func RankPairs() []RankPair {
	out := make([]RankPair, len(supportedPairs))
	copy(out, supportedPairs[:])

	return out
}

// Supported reports whether (rankA, rankB) is one of the four supported pairings.
func Supported(rankA, rankB int) bool {
	for _, p := range supportedPairs {
		if p.A == rankA && p.B == rankB {
			return true
		}
	}

	return false
}

// Kernels returns all twenty kernels, method-major, pairs in table order.
func Kernels() []*Kernel {
	out := make([]*Kernel, len(kernelList))
	copy(out, kernelList)

	return out
}

// Lookup selects the kernel for method m and operand ranks (rankA, rankB).
// The rank pairing is checked before the method.
//
// Errors:
//   - ErrUnsupportedRankPairing, ErrUnknownMethod.
func Lookup(m Method, rankA, rankB int) (*Kernel, error) {
	if !Supported(rankA, rankB) {
		return nil, fmt.Errorf("Lookup: A=%dD, B=%dD: %w", rankA, rankB, ErrUnsupportedRankPairing)
	}
	if !m.Valid() {
		return nil, fmt.Errorf("Lookup: method %d: %w", int(m), ErrUnknownMethod)
	}

	return kernelTable[kernelKey{method: m, pair: RankPair{A: rankA, B: rankB}}], nil
}

// OutputRank returns the rank Multiply(a, b, m) produces for operand ranks (rankA, rankB).
func OutputRank(m Method, rankA, rankB int) (int, error) {
	k, err := Lookup(m, rankA, rankB)
	if err != nil {
		return 0, err
	}

	return k.OutputRank(), nil
}

// Multiply computes the m-convolved product of a and b as a new tensor.
// Neither operand is modified. No fallback is attempted on failure and no
// output is allocated.
//
// Errors:
//   - ErrNilTensor, ErrUnsupportedRankPairing, ErrUnknownMethod.
func Multiply(a, b *tensor.Sparse, m Method) (*tensor.Sparse, error) {
	out, _, err := MultiplyStats(a, b, m)

	return out, err
}

// MultiplyStats is Multiply that also reports match and collision counts.
func MultiplyStats(a, b *tensor.Sparse, m Method) (*tensor.Sparse, Stats, error) {
	if a == nil || b == nil {
		return nil, Stats{}, fmt.Errorf("Multiply: %w", ErrNilTensor)
	}
	k, err := Lookup(m, a.Rank(), b.Rank())
	if err != nil {
		return nil, Stats{}, fmt.Errorf("Multiply: %w", err)
	}

	return k.Apply(a, b)
}
