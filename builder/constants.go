// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by tensor constructors, ensuring
// consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodSequential is the canonical name for the Sequential constructor.
	MethodSequential = "Sequential"
	// MethodFilled is the canonical name for the Filled constructor.
	MethodFilled = "Filled"
	// MethodParseShape is the canonical name for ParseShape.
	MethodParseShape = "ParseShape"
)

//-----------------------------------------------------------------------------
// Value Defaults
//-----------------------------------------------------------------------------

// DefaultLo and DefaultHi bound the default uniform distribution [DefaultLo, DefaultHi).
const (
	DefaultLo = 0.0
	DefaultHi = 10.0
)

// DefaultPrecision is the number of decimals random values are rounded to.
const DefaultPrecision = 2

// MaxPrecision bounds WithPrecision; float64 carries about 15 significant decimals.
const MaxPrecision = 15

// DefaultDensity keeps every cell.
const DefaultDensity = 1.0

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// MinProbability and MaxProbability bound the density, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// MaxCells caps the number of cells a constructor will enumerate.
const MaxCells = 1 << 24
