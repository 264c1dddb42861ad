// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set[N], the insertion-ordered neighbor set handed in and out of Graph.
// Determinism:
//   - Slice/All follow insertion order.
// Concurrency:
//   - Not synchronized.

package core

import "iter"

// Set is an insertion-ordered set of nodes.
//
// The zero value is an empty set ready to use. Every Set returned by a Graph
// query is an independent copy: mutating it never changes the graph.
type Set[N comparable] struct {
	m *orderedMap[N, struct{}]
}

// NewSet returns a set holding items in the given order, duplicates collapsed.
func NewSet[N comparable](items ...N) *Set[N] {
	s := &Set[N]{m: newOrderedMap[N, struct{}](len(items))}
	for _, it := range items {
		s.m.put(it, struct{}{})
	}

	return s
}

// Add inserts n. Adding a present member is a no-op and keeps its position.
func (s *Set[N]) Add(n N) {
	if s.m == nil {
		s.m = newOrderedMap[N, struct{}](1)
	}
	s.m.put(n, struct{}{})
}

// Delete removes n and reports whether it was a member.
func (s *Set[N]) Delete(n N) bool {
	if s == nil || s.m == nil {
		return false
	}

	return s.m.remove(n)
}

// Has reports membership. Safe on a nil *Set.
func (s *Set[N]) Has(n N) bool {
	if s == nil {
		return false
	}

	return s.m.has(n)
}

// Len returns the member count. Safe on a nil *Set.
func (s *Set[N]) Len() int {
	if s == nil {
		return 0
	}

	return s.m.len()
}

// All iterates members in insertion order.
func (s *Set[N]) All() iter.Seq[N] {
	if s == nil {
		return func(func(N) bool) {}
	}

	return s.m.keys()
}

// Slice returns the members in insertion order.
func (s *Set[N]) Slice() []N {
	out := make([]N, 0, s.Len())
	for n := range s.All() {
		out = append(out, n)
	}

	return out
}

// Clone returns an independent copy with the same order.
func (s *Set[N]) Clone() *Set[N] {
	c := &Set[N]{m: newOrderedMap[N, struct{}](s.Len())}
	for n := range s.All() {
		c.m.put(n, struct{}{})
	}

	return c
}

// Equal reports whether s and o hold the same members, ignoring order.
func (s *Set[N]) Equal(o *Set[N]) bool {
	if s.Len() != o.Len() {
		return false
	}
	for n := range s.All() {
		if !o.Has(n) {
			return false
		}
	}

	return true
}
