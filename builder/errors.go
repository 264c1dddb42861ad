// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, min, ErrTooFewVertices)
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource →
//   ErrIDSpaceExhausted → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1/n2, rows, cols)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrIDSpaceExhausted indicates that the configured ID scheme cannot name
// as many nodes as the constructor needs (e.g. more than 26 symbol IDs).
var ErrIDSpaceExhausted = errors.New("builder: ID scheme exhausted")

// ErrConstructFailed indicates that construction could not run at all
// (nil graph, nil constructor, unknown topology name).
var ErrConstructFailed = errors.New("builder: construction failed")
