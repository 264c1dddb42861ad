// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// topology.go - name-based constructor lookup for command-line callers.
//
// Contract:
//   • Names are case-insensitive; surrounding whitespace is ignored.
//   • n is the primary size, m the secondary one (cols, right partition).
//     p is used by "random" only.
//   • Unknown names wrap ErrConstructFailed. Size checks are deferred to the
//     returned Constructor.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// topologies maps a lower-case name to its Constructor factory.
var topologies = map[string]func(n, m int, p float64) Constructor{
	"path":      func(n, _ int, _ float64) Constructor { return Path(n) },
	"cycle":     func(n, _ int, _ float64) Constructor { return Cycle(n) },
	"star":      func(n, _ int, _ float64) Constructor { return Star(n) },
	"wheel":     func(n, _ int, _ float64) Constructor { return Wheel(n) },
	"complete":  func(n, _ int, _ float64) Constructor { return Complete(n) },
	"bipartite": func(n, m int, _ float64) Constructor { return CompleteBipartite(n, m) },
	"grid":      func(n, m int, _ float64) Constructor { return Grid(n, m) },
	"random":    func(n, _ int, p float64) Constructor { return RandomSparse(n, p) },
}

// Topology resolves name into a Constructor.
func Topology(name string, n, m int, p float64) (Constructor, error) {
	factory, ok := topologies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%s: unknown topology %q (want one of %s): %w",
			methodTopology, name, strings.Join(TopologyNames(), ", "), ErrConstructFailed)
	}

	return factory(n, m, p), nil
}

// TopologyNames lists the names accepted by Topology, sorted.
func TopologyNames() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
