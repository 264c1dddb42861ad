// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping a sentinel when its precondition
// is violated, prefixed with the constructor name.
package builder

import "fmt"

// validateMin ensures that got ≥ min, else wraps ErrTooFewVertices.
//
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability],
// else wraps ErrInvalidProbability.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
