// SPDX-License-Identifier: MIT

// Package contract - kernels.
//
// A Kernel is a rule specialized for one (rank A, rank B) pair: the matched
// positions and the positions copied into the output are resolved once, so
// Apply is a tight loop over entries.
//
// Determinism:
//   - Matched pairs are visited in nested-loop order: A entries in insertion
//     order, and for each of them the matching B entries in insertion order.
//     B is bucketed by its matched coordinates; each bucket keeps B's order,
//     so the visit sequence equals the filtered cartesian product.
//   - Output entries appear in the order their coordinate is first written.

package contract

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
)

// maxMatches bounds the number of matched pairs of any rule.
const maxMatches = 2

// probe is the value of the matched coordinates of one entry.
type probe [maxMatches]int

// Stats describes one kernel application.
type Stats struct {
	// Matches is the number of (A entry, B entry) pairs that satisfied the predicate.
	Matches int
	// Collisions counts writes to an output coordinate that was already present.
	// Always 0 for Assign methods.
	Collisions int
	// Entries is the number of entries in the output tensor.
	Entries int
}

// Kernel is one of the twenty (method, rank A, rank B) specializations.
type Kernel struct {
	method       Method
	rankA, rankB int
	rankOut      int
	aMatch       []int // A positions compared ...
	bMatch       []int // ... with these B positions, pairwise
	aKeep        []int // A positions copied to the output, in order
	bKeep        []int // B positions copied after them, in order
	agg          Aggregation
}

// newKernel resolves rule positions for ranks (rA, rB).
func newKernel(m Method, rA, rB int) *Kernel {
	r := m.rule()
	k := &Kernel{
		method:  m,
		rankA:   rA,
		rankB:   rB,
		rankOut: rA + rB - m.rankDelta(),
		agg:     m.Aggregation(),
	}
	dropA := make(map[int]bool, len(r.matches))
	dropB := make(map[int]bool, len(r.matches))
	for _, mt := range r.matches {
		a := rA - mt.fromEnd
		k.aMatch = append(k.aMatch, a)
		k.bMatch = append(k.bMatch, mt.b)
		dropB[mt.b] = true
		if !mt.retain {
			dropA[a] = true
		}
	}
	for i := 0; i < rA; i++ {
		if !dropA[i] {
			k.aKeep = append(k.aKeep, i)
		}
	}
	for j := 0; j < rB; j++ {
		if !dropB[j] {
			k.bKeep = append(k.bKeep, j)
		}
	}

	return k
}

// Method returns the kernel's method.
func (k *Kernel) Method() Method { return k.method }

// Ranks returns the operand ranks the kernel accepts.
func (k *Kernel) Ranks() (rankA, rankB int) { return k.rankA, k.rankB }

// OutputRank returns the rank of every tensor the kernel produces.
func (k *Kernel) OutputRank() int { return k.rankOut }

// Aggregation returns how products are written.
func (k *Kernel) Aggregation() Aggregation { return k.agg }

// String returns e.g. "cayley2[3x4->3]".
func (k *Kernel) String() string {
	return fmt.Sprintf("%s[%dx%d->%d]", k.method, k.rankA, k.rankB, k.rankOut)
}

// Apply computes the product of a and b.
// Implementation:
//   - Stage 1: check operand ranks (ErrNilTensor, ErrUnsupportedRankPairing).
//   - Stage 2: bucket B's entries by their matched coordinates, keeping order.
//   - Stage 3: for each A entry, walk its bucket, assemble the output
//     coordinate (A's kept positions, then B's free positions) and add or
//     assign valA*valB.
//
// Behavior highlights:
//   - Inputs are read only; the output is a new tensor without NaN/Inf
//     validation, so a started contraction always completes.
//
// Complexity:
//   - Time O(|A| + |B| + matches·r), Space O(|B| + |result|).
func (k *Kernel) Apply(a, b *tensor.Sparse) (*tensor.Sparse, Stats, error) {
	var st Stats
	if a == nil || b == nil {
		return nil, st, fmt.Errorf("%s: %w", k, ErrNilTensor)
	}
	if a.Rank() != k.rankA || b.Rank() != k.rankB {
		return nil, st, fmt.Errorf("%s: operands have ranks (%d,%d): %w",
			k, a.Rank(), b.Rank(), ErrUnsupportedRankPairing)
	}

	bEntries := b.Entries()
	buckets := make(map[probe][]int, len(bEntries))
	for j := range bEntries {
		p := probeOf(bEntries[j].Coord, k.bMatch)
		buckets[p] = append(buckets[p], j)
	}

	out := tensor.MustNew(k.rankOut, tensor.WithNoValidateNaNInf())
	coord := make([]int, k.rankOut)
	a.Each(func(ca []int, va float64) bool {
		for _, j := range buckets[probeOf(ca, k.aMatch)] {
			eb := bEntries[j]
			n := 0
			for _, pos := range k.aKeep {
				coord[n] = ca[pos]
				n++
			}
			for _, pos := range k.bKeep {
				coord[n] = eb.Coord[pos]
				n++
			}
			st.Matches++
			if out.Has(coord) {
				st.Collisions++
			}
			// coord has the output rank and non-negative components, and the
			// output does not validate values: neither write can fail.
			if k.agg == Sum {
				_ = out.Add(coord, va*eb.Value)
			} else {
				_ = out.Set(coord, va*eb.Value)
			}
		}

		return true
	})
	st.Entries = out.Len()

	return out, st, nil
}

// probeOf extracts the coordinates at positions into a fixed-size key.
func probeOf(coord []int, positions []int) probe {
	var p probe
	for i, pos := range positions {
		p[i] = coord[pos]
	}

	return p
}
