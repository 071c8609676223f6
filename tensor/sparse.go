// SPDX-License-Identifier: MIT

// Package tensor - Sparse storage (insertion-ordered coordinate map) & safe accessors.
//
// Purpose:
//   - Keep a coordinate → value map whose iteration order is the order in which
//     coordinates were first written. Consumers that sum products rely on it:
//     the order fixes floating-point accumulation bit-for-bit.
//   - Guarantee safety at the public surface: Set/Add return errors instead of panicking.
//   - Derive shape from the support on every request; nothing is preallocated.
//
// AI-Hints:
//   - Use Each for read-only scans; use Entries when the coordinates must outlive the call.
//   - Overwriting a coordinate keeps its original position in the order.
//
// Complexity quicksheet:
//   - Set/Add/Get: O(r) amortized; Entries: O(nnz·r); Shape: O(nnz·r); Clone: O(nnz).

package tensor

import (
	"fmt"
)

// key is the fixed-size, hashable form of a coordinate. Positions at or
// beyond the tensor rank are always zero.
type key [MaxRank]int

// Entry is one stored (coordinate, value) pair.
type Entry struct {
	Coord []int
	Value float64
}

// Sparse is a rank-r sparse tensor.
//   - coords/values hold the stored entries in insertion order.
//   - index maps a coordinate to its position in coords/values.
//   - validateNaNInf enables NaN/Inf rejection in Set and Add.
type Sparse struct {
	rank           int
	coords         []key
	values         []float64
	index          map[key]int
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// New creates an empty tensor of the given rank.
// MAIN DESCRIPTION:
//   - Public constructor with strict rank validation and the default numeric policy.
//
// Implementation:
//   - Stage 1: validate 1 ≤ rank ≤ MaxRank; else ErrBadRank.
//   - Stage 2: resolve options and allocate storage with the capacity hint.
//
// Errors:
//   - ErrBadRank.
//
// Complexity:
//   - Time O(capacity), Space O(capacity).
func New(rank int, opts ...Option) (*Sparse, error) {
	if rank < 1 || rank > MaxRank {
		return nil, tensorErrorf(ctxNew, ErrBadRank, "rank=%d not in [1,%d]", rank, MaxRank)
	}
	o := gatherOptions(opts...)

	return &Sparse{
		rank:           rank,
		coords:         make([]key, 0, o.capacity),
		values:         make([]float64, 0, o.capacity),
		index:          make(map[key]int, o.capacity),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// MustNew is New for ranks known to be valid. It panics on ErrBadRank.
func MustNew(rank int, opts ...Option) *Sparse {
	t, err := New(rank, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Rank returns the number of indices that address an element.
func (s *Sparse) Rank() int { return s.rank }

// Len returns the number of stored entries.
func (s *Sparse) Len() int { return len(s.coords) }

// keyOf validates coord against the rank and the non-negativity rule.
func (s *Sparse) keyOf(method string, coord []int) (key, error) {
	var k key
	if len(coord) != s.rank {
		return k, tensorErrorf(method, ErrRankMismatch, "coordinate %v has length %d, rank is %d", coord, len(coord), s.rank)
	}
	for i, c := range coord {
		if c < 0 {
			return k, tensorErrorf(method, ErrNegativeIndex, "coordinate %v axis %d", coord, i)
		}
		k[i] = c
	}

	return k, nil
}

// checkValue applies the numeric policy.
func (s *Sparse) checkValue(method string, coord []int, v float64) error {
	if s.validateNaNInf && isNonFinite(v) {
		return tensorErrorf(method, ErrNaNInf, "coordinate %v value %g", coord, v)
	}

	return nil
}

// Set stores v at coord, replacing any previous value.
// Implementation:
//   - Stage 1: validate coordinate length, non-negativity and the value.
//   - Stage 2: overwrite in place or append a new entry.
//
// Behavior highlights:
//   - An overwrite keeps the coordinate's position in the insertion order.
//   - Storing 0 creates an entry; it still reads as 0 and contributes to Shape.
//
// Errors:
//   - ErrRankMismatch, ErrNegativeIndex, ErrNaNInf (wrapped with context).
func (s *Sparse) Set(coord []int, v float64) error {
	k, err := s.keyOf(ctxSet, coord)
	if err != nil {
		return err
	}
	if err = s.checkValue(ctxSet, coord, v); err != nil {
		return err
	}
	s.put(k, v)

	return nil
}

// Add accumulates v into coord (absent reads as 0).
// The sum is validated against the numeric policy before it is stored.
func (s *Sparse) Add(coord []int, v float64) error {
	k, err := s.keyOf(ctxAdd, coord)
	if err != nil {
		return err
	}
	sum := v
	if pos, ok := s.index[k]; ok {
		sum += s.values[pos]
	}
	if err = s.checkValue(ctxAdd, coord, sum); err != nil {
		return err
	}
	s.put(k, sum)

	return nil
}

// put writes v under k. The caller has validated k and v.
func (s *Sparse) put(k key, v float64) {
	if pos, ok := s.index[k]; ok {
		s.values[pos] = v

		return
	}
	s.index[k] = len(s.coords)
	s.coords = append(s.coords, k)
	s.values = append(s.values, v)
}

// Get returns the value stored at coord, or 0 when it is absent.
// A coordinate of the wrong length or with negative components reads as 0.
func (s *Sparse) Get(coord []int) float64 {
	if len(coord) != s.rank {
		return 0
	}
	var k key
	for i, c := range coord {
		if c < 0 {
			return 0
		}
		k[i] = c
	}
	if pos, ok := s.index[k]; ok {
		return s.values[pos]
	}

	return 0
}

// Has reports whether coord has a stored entry (even an explicit zero).
func (s *Sparse) Has(coord []int) bool {
	if len(coord) != s.rank {
		return false
	}
	var k key
	copy(k[:], coord)
	_, ok := s.index[k]

	return ok
}

// Entries returns every stored entry in insertion order.
// Coordinates are fresh slices owned by the caller.
// Complexity: O(nnz·r).
func (s *Sparse) Entries() []Entry {
	out := make([]Entry, len(s.coords))
	for i := range s.coords {
		c := make([]int, s.rank)
		copy(c, s.coords[i][:s.rank])
		out[i] = Entry{Coord: c, Value: s.values[i]}
	}

	return out
}

// Each calls fn for every stored entry in insertion order until fn returns false.
// The coord slice is reused between calls; fn must not retain or modify it.
func (s *Sparse) Each(fn func(coord []int, v float64) bool) {
	buf := make([]int, s.rank)
	for i := range s.coords {
		copy(buf, s.coords[i][:s.rank])
		if !fn(buf, s.values[i]) {
			return
		}
	}
}

// Shape returns 1 + the largest index observed on every axis.
// An empty tensor has an empty (nil) shape.
// Complexity: O(nnz·r).
func (s *Sparse) Shape() []int {
	if len(s.coords) == 0 {
		return nil
	}
	shape := make([]int, s.rank)
	for i := range s.coords {
		for axis := 0; axis < s.rank; axis++ {
			if n := s.coords[i][axis] + 1; n > shape[axis] {
				shape[axis] = n
			}
		}
	}

	return shape
}

// Clone returns an independent copy that keeps order and numeric policy.
func (s *Sparse) Clone() *Sparse {
	c := &Sparse{
		rank:           s.rank,
		coords:         make([]key, len(s.coords)),
		values:         make([]float64, len(s.values)),
		index:          make(map[key]int, len(s.index)),
		validateNaNInf: s.validateNaNInf,
	}
	copy(c.coords, s.coords)
	copy(c.values, s.values)
	for k, pos := range s.index {
		c.index[k] = pos
	}

	return c
}

// String implements fmt.Stringer with a short summary for debugging.
// Use the notation package for the full bracket rendering.
func (s *Sparse) String() string {
	if s == nil {
		return "Sparse(nil)"
	}

	return fmt.Sprintf("Sparse(rank=%d, nnz=%d, shape=%v)", s.rank, len(s.coords), s.Shape())
}
