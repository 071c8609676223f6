// Package lvtensor is a small toolkit for sparse rank-3 and rank-4 tensors
// and their Munerman (λ,μ)-convolved products.
//
// 🚀 What is lvtensor?
//
//	A pure-Go library plus a command-line workspace that brings together:
//		• Sparse tensors: insertion-ordered coordinate maps with derived shape
//		• Contraction engine: five methods × four rank pairings = 20 kernels
//		• Bracket notation: [[[1, 2]; [3, 4]], [[5, 6]; [7, 8]]] in and out
//		• Builders: seeded random fixtures, sequential and constant tensors
//		• Workspace: named tensors persisted in Badger
//		• Runner: timing, slog logs, Prometheus metrics and OpenTelemetry spans
//
// ✨ The five methods
//
//	id  name     (λ,μ)  output rank  aggregation
//	1   cayley2  (0,2)  rA+rB-4      sum
//	2   cayley1  (0,1)  rA+rB-2      sum
//	3   scott2   (2,0)  rA+rB-2      assign
//	4   scott1   (1,0)  rA+rB-1      assign
//	5   mixed    (1,1)  rA+rB-3      sum
//
// Packages:
//
//	tensor/   - Sparse, dense round-trip, comparisons, gonum matrix export
//	contract/ - methods, kernels, dispatcher (Multiply)
//	notation/ - bracket notation Format / Parse
//	builder/  - Random, Sequential, Filled, ParseShape
//	store/    - Badger-backed named-tensor workspace
//	session/  - instrumented Runner and result Report
//	cmd/tensorctl - CLI over all of the above
//
// Quick example:
//
//	a, _ := notation.Parse("[[[1, 2]; [3, 4]], [[5, 6]; [7, 8]]]")
//	c, _ := contract.Multiply(a, a, contract.Cayley2) // rank 2
//	fmt.Println(notation.Format(c))
//
//	go install github.com/katalvlaran/lvtensor/cmd/tensorctl@latest
package lvtensor
