// SPDX-License-Identifier: MIT

// Package builder provides internal helpers used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/adjset/core"
)

// makeIDs returns cfg.idFn(0..n-1), or ErrIDSpaceExhausted when the scheme
// cannot name n nodes.
//
// Complexity: O(n) time and space.
func makeIDs(method string, cfg builderConfig, n int) ([]string, error) {
	if cfg.idCap != unboundedIDs && n > cfg.idCap {
		return nil, fmt.Errorf("%s: %d nodes requested, ID scheme holds %d: %w",
			method, n, cfg.idCap, ErrIDSpaceExhausted)
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}

	return ids, nil
}

// prefixedIDs returns prefix+"0" .. prefix+"n-1".
func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// addPathEdges connects ids[i-1]-ids[i] for i ascending.
//
// Complexity: O(len(ids)).
func addPathEdges(g *core.Graph[string], ids []string) {
	for i := 1; i < len(ids); i++ {
		g.SetEdge(ids[i-1], ids[i])
	}
}

// addCompleteEdges connects every unordered pair {ids[i], ids[j]}, i<j.
//
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.Graph[string], ids []string) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			g.SetEdge(ids[i], ids[j])
		}
	}
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
