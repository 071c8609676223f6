// SPDX-License-Identifier: MIT

// Package builder generates tensors of a given shape: random fixtures,
// sequential samples and constant fills.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Random(shape, opts...):     every cell (or a p-fraction of them) drawn from a ValueFn.
//     – Sequential(shape, opts...): cells 1, 2, 3, … in row-major order.
//     – Filled(shape, v, opts...):  every cell = v.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  RNG, value distribution, density, precision, tensor options.
//   - Value distributions (ValueFn implementations):
//     – UniformValueFn, ConstantValueFn, NormalValueFn.
//   - Shape helpers:
//     – ParseShape("2x2x2" | "2,2,2"), FormatShape.
//
// Guarantees:
//
//   - Determinism: cells are visited in row-major order and every random draw
//     comes from the configured *rand.Rand, so equal seeds give equal tensors.
//   - Fast-fail on meaningless option parameters via panics in option constructors;
//     user-facing parameters (shape, density, range) return sentinel errors.
//   - Stochastic constructors never fall back to a global RNG (ErrNeedRandSource).
package builder
