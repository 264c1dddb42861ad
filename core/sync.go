// SPDX-License-Identifier: MIT
//
// File: sync.go
// Role: Opt-in locking wrapper around Graph for shared use across goroutines.
// Concurrency:
//   - Single sync.RWMutex: mutations take the write lock, queries the read lock.
//   - Returned sets and slices are copies, so they stay valid after the lock is released.

package core

import "sync"

// Synchronized guards a Graph with a sync.RWMutex.
//
// Each method is atomic on its own. Use Update/View to make a sequence of
// operations atomic as a whole.
type Synchronized[N comparable] struct {
	mu sync.RWMutex
	g  *Graph[N]
}

// NewSynchronized creates a guarded graph seeded like NewGraph.
func NewSynchronized[N comparable](entries ...Entry[N]) *Synchronized[N] {
	return &Synchronized[N]{g: NewGraph(entries...)}
}

// Synchronize wraps g. The caller must stop using g directly afterwards.
func Synchronize[N comparable](g *Graph[N]) *Synchronized[N] {
	return &Synchronized[N]{g: g}
}

// Update runs fn with exclusive access to the underlying graph.
// fn must not retain g after returning.
func (s *Synchronized[N]) Update(fn func(g *Graph[N])) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.g)
}

// View runs fn with shared read access. fn must not mutate g.
func (s *Synchronized[N]) View(fn func(g *Graph[N])) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.g)
}

// SetEdge is Graph.SetEdge under the write lock.
func (s *Synchronized[N]) SetEdge(k, v N) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.SetEdge(k, v)
}

// RemoveEdge is Graph.RemoveEdge under the write lock.
func (s *Synchronized[N]) RemoveEdge(k, v N) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.RemoveEdge(k, v)
}

// DeleteNode is Graph.DeleteNode under the write lock.
func (s *Synchronized[N]) DeleteNode(k N) (*Set[N], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.DeleteNode(k)
}

// Clear is Graph.Clear under the write lock.
func (s *Synchronized[N]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.Clear()
}

// HasNode is Graph.HasNode under the read lock.
func (s *Synchronized[N]) HasNode(k N) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasNode(k)
}

// HasEdge is Graph.HasEdge under the read lock.
func (s *Synchronized[N]) HasEdge(k, v N) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasEdge(k, v)
}

// Get is Graph.Get under the read lock.
func (s *Synchronized[N]) Get(k N) (*Set[N], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Get(k)
}

// Nodes is Graph.Nodes under the read lock.
func (s *Synchronized[N]) Nodes() *Set[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Nodes()
}

// Edges is Graph.Edges under the read lock.
func (s *Synchronized[N]) Edges() []Edge[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Edges()
}

// Size is Graph.Size under the read lock.
func (s *Synchronized[N]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Size()
}

// Snapshot returns a deep copy taken under the read lock.
func (s *Synchronized[N]) Snapshot() *Graph[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}
