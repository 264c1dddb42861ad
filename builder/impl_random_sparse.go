// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, is included independently with prob p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - n above the ID scheme capacity → ErrIDSpaceExhausted (no node is added).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Nodes that draw no edge are not stored (no-orphan rule), so Size() may be < n.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc; identical output for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjset/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := makeIDs(methodRandomSparse, cfg, n)
		if err != nil {
			return err
		}
		if p == MaxProbability {
			addCompleteEdges(g, ids)
			return nil
		}
		if p == MinProbability {
			return nil
		}

		added := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					g.SetEdge(ids[i], ids[j])
					added++
				}
			}
		}
		log.Tracef("%s(n=%d, p=%.3f): sampled %d edges", methodRandomSparse, n, p, added)

		return nil
	}
}
