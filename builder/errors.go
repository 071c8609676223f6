// SPDX-License-Identifier: MIT
// Package: lvtensor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is(err, ErrX).
//   • Context is attached with %w at the detection site:
//       fmt.Errorf("%s: density=%.3f: %w", MethodRandom, p, ErrInvalidProbability)
//   • Constructors never panic at runtime; panics are confined to WithX option
//     constructors receiving meaningless values.
//
// Priority when several validations fail:
//   ErrBadShape → ErrInvalidProbability → ErrInvalidRange → ErrNeedRandSource.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadShape indicates an unusable shape: empty, deeper than tensor.MaxRank,
// a non-positive axis length, too many cells, or unparsable text.
var ErrBadShape = errors.New("builder: invalid shape")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor has no *rand.Rand
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRange indicates a value interval with lo ≥ hi or a non-finite bound.
var ErrInvalidRange = errors.New("builder: invalid value range")

// builderErrorf wraps err with the constructor name and a formatted detail:
// "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
