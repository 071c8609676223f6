// SPDX-License-Identifier: MIT
// Package contract_test contains test helpers.
//
// Purpose:
//   • Deterministic random fixtures with a small index range so that many
//     entry pairs match.
//   • A brute-force nested-loop reference written directly from the method
//     table, independent of the kernel machinery under test.

package contract_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtensor/contract"
	"github.com/katalvlaran/lvtensor/tensor"
)

// mustTensor builds a tensor of the given rank from coordinate/value pairs.
func mustTensor(t testing.TB, rank int, entries map[[4]int]float64, order ...[4]int) *tensor.Sparse {
	t.Helper()
	s := tensor.MustNew(rank)
	for _, k := range order {
		if err := s.Set(k[:rank], entries[k]); err != nil {
			t.Fatalf("Set(%v): %v", k[:rank], err)
		}
	}

	return s
}

// randomTensor fills n random coordinates in [0, span) with values in [-5, 5).
func randomTensor(t testing.TB, rng *rand.Rand, rank, n, span int) *tensor.Sparse {
	t.Helper()
	s := tensor.MustNew(rank)
	coord := make([]int, rank)
	for i := 0; i < n; i++ {
		for axis := range coord {
			coord[axis] = rng.Intn(span)
		}
		if err := s.Set(coord, rng.Float64()*10-5); err != nil {
			t.Fatalf("Set(%v): %v", coord, err)
		}
	}

	return s
}

// shuffled rebuilds s with its entries inserted in a random order.
func shuffled(t testing.TB, rng *rand.Rand, s *tensor.Sparse) *tensor.Sparse {
	t.Helper()
	entries := s.Entries()
	rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	out := tensor.MustNew(s.Rank())
	for _, e := range entries {
		if err := out.Set(e.Coord, e.Value); err != nil {
			t.Fatalf("Set(%v): %v", e.Coord, err)
		}
	}

	return out
}

// concat returns a fresh slice holding x followed by y.
func concat(x, y []int) []int {
	out := make([]int, 0, len(x)+len(y))
	out = append(out, x...)

	return append(out, y...)
}

// reference is the nested-loop definition of every method.
// It returns the product and the number of matching pairs.
func reference(t testing.TB, a, b *tensor.Sparse, m contract.Method) (*tensor.Sparse, int) {
	t.Helper()
	rA, rB := a.Rank(), b.Rank()
	deltas := map[contract.Method]int{
		contract.Cayley2: 4, contract.Cayley1: 2, contract.Scott2: 2, contract.Scott1: 1, contract.Mixed: 3,
	}
	out := tensor.MustNew(rA+rB-deltas[m], tensor.WithNoValidateNaNInf())
	matches := 0
	for _, ea := range a.Entries() {
		for _, eb := range b.Entries() {
			x, y := ea.Coord, eb.Coord
			var (
				ok  bool
				key []int
				sum = true
			)
			switch m {
			case contract.Cayley2:
				ok = x[rA-2] == y[0] && x[rA-1] == y[1]
				key = concat(x[:rA-2], y[2:])
			case contract.Cayley1:
				ok = x[rA-1] == y[0]
				key = concat(x[:rA-1], y[1:])
			case contract.Scott2:
				ok = x[rA-2] == y[0] && x[rA-1] == y[1]
				key = concat(x, y[2:])
				sum = false
			case contract.Scott1:
				ok = x[rA-1] == y[0]
				key = concat(x, y[1:])
				sum = false
			case contract.Mixed:
				ok = x[rA-1] == y[0] && x[rA-2] == y[1]
				key = concat(x[:rA-1], y[2:])
			}
			if !ok {
				continue
			}
			matches++
			var err error
			if sum {
				err = out.Add(key, ea.Value*eb.Value)
			} else {
				err = out.Set(key, ea.Value*eb.Value)
			}
			if err != nil {
				t.Fatalf("reference write %v: %v", key, err)
			}
		}
	}

	return out, matches
}
