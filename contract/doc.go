// Package contract implements the five Munerman convolved products of two
// sparse tensors of rank 3 or 4.
//
// 🚀 What is a (λ,μ)-convolved product?
//
//	The trailing indices of A are matched against the leading indices of B.
//	A matched pair is either eliminated (a Cayley index: it disappears from the
//	result and products are summed over it, like a classic contraction) or
//	retained (a Scott index: it stays in the result under A's value and the
//	product behaves as an equality join). λ counts Scott indices, μ counts
//	Cayley indices.
//
//	  Method  (λ,μ)  matched                        result coordinate     rank
//	  1       (0,2)  a[r-2]=b[0], a[r-1]=b[1]       a[:r-2] ++ b[2:]      rA+rB-4
//	  2       (0,1)  a[r-1]=b[0]                    a[:r-1] ++ b[1:]      rA+rB-2
//	  3       (2,0)  a[r-2]=b[0], a[r-1]=b[1]       a       ++ b[2:]      rA+rB-2
//	  4       (1,0)  a[r-1]=b[0]                    a       ++ b[1:]      rA+rB-1
//	  5       (1,1)  a[r-1]=b[0] (C), a[r-2]=b[1]   a[:r-1] ++ b[2:]      rA+rB-3
//
// ✨ Key features:
//   - one parameter table instead of twenty hand-written routines;
//   - twenty precomputed kernels for (3,3), (4,4), (3,4), (4,3);
//   - summing methods (1,2,5) accumulate in the exact nested-loop order
//     (A entries outer, B entries inner, insertion order), joining methods
//     (3,4) assign and can never collide;
//   - inputs are never mutated, outputs are always fresh tensors.
//
// ⚙️ Usage:
//
//	c, err := contract.Multiply(a, b, contract.Cayley2)
//	if errors.Is(err, contract.ErrUnsupportedRankPairing) { ... }
//
// Performance:
//
//   - Time: O(|A| + |B| + matches) using a hash index of B on its matched
//     coordinates; O(|A|·|B|) when every pair matches.
//   - Memory: O(|B| + |result|).
package contract
