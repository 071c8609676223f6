// Package tensor provides a sparse, coordinate-keyed multi-index array of
// float64 values with a shape derived from its support.
//
// 🚀 What is a Sparse tensor?
//
//	A Sparse tensor of rank r maps integer coordinates (c0, c1, …, c{r-1}),
//	every ci ≥ 0, to real values. Coordinates that were never written read as 0.
//	Shape is not stored: for every axis i it is recomputed on request as
//	1 + max(ci) over the stored coordinates, so an empty tensor has an empty shape.
//
// ✨ Key features:
//   - insertion-ordered entries (overwrites keep their original position),
//     which fixes the floating-point accumulation order of any consumer;
//   - strict write validation (rank, non-negative indices, NaN/Inf policy);
//   - dense round-trip through nested slices (ToDense / FromDense) with
//     explicit rejection of jagged input;
//   - tolerance comparison (AllClose) and rank-2 export to gonum (ToMatrix).
//
// ⚙️ Usage:
//
//	t, _ := tensor.New(3)
//	_ = t.Set([]int{0, 0, 1}, 2.5)
//	fmt.Println(t.Get([]int{0, 0, 1})) // 2.5
//	fmt.Println(t.Shape())             // [1 1 2]
//
// Complexity:
//
//   - Set / Add / Get: O(r) (key construction) amortized.
//   - Shape: O(nnz·r).  ToDense: O(Π shape + nnz·r).  FromDense: O(cells).
package tensor
