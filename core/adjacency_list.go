// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Insertion-ordered storage backing both the node catalog and every neighbor set.
// Determinism:
//   - Iteration follows first-insertion order; re-inserting a live key keeps its slot,
//     re-inserting a removed key appends it at the tail.
// Concurrency:
//   - None. Callers (Graph, Set) are single-owner; see Synchronized for shared use.

package core

import "iter"

// link is one slot of an orderedMap. Removed links keep their next pointer so
// that an iteration parked on them can still walk forward.
type link[K comparable, V any] struct {
	key     K
	val     V
	prev    *link[K, V]
	next    *link[K, V]
	seq     uint64 // insertion stamp; strictly increasing along the list
	removed bool
}

// orderedMap is a hash index over a doubly linked list.
// put/get/remove are O(1); iteration is O(len).
type orderedMap[K comparable, V any] struct {
	index map[K]*link[K, V]
	head  *link[K, V]
	tail  *link[K, V]
	seq   uint64 // last stamp handed out; never reset
}

func newOrderedMap[K comparable, V any](capHint int) *orderedMap[K, V] {
	return &orderedMap[K, V]{index: make(map[K]*link[K, V], capHint)}
}

func (m *orderedMap[K, V]) len() int {
	if m == nil {
		return 0
	}

	return len(m.index)
}

func (m *orderedMap[K, V]) get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	l, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}

	return l.val, true
}

func (m *orderedMap[K, V]) has(k K) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[k]

	return ok
}

// put stores v under k. An existing key keeps its position.
func (m *orderedMap[K, V]) put(k K, v V) {
	if l, ok := m.index[k]; ok {
		l.val = v
		return
	}
	m.seq++
	l := &link[K, V]{key: k, val: v, prev: m.tail, seq: m.seq}
	if m.tail == nil {
		m.head = l
	} else {
		m.tail.next = l
	}
	m.tail = l
	m.index[k] = l
}

// remove unlinks k and reports whether it was present.
func (m *orderedMap[K, V]) remove(k K) bool {
	l, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	if l.prev == nil {
		m.head = l.next
	} else {
		l.prev.next = l.next
	}
	if l.next == nil {
		m.tail = l.prev
	} else {
		l.next.prev = l.prev
	}
	l.removed = true

	return true
}

// reset drops every entry. Links are marked removed so in-flight iterators skip
// them; entries put afterwards are still reached.
func (m *orderedMap[K, V]) reset() {
	for l := m.head; l != nil; l = l.next {
		l.removed = true
	}
	clear(m.index)
	m.head, m.tail = nil, nil
}

// all yields live entries in insertion order. Entries removed while the
// iteration is running are skipped; entries appended after the current
// position are produced, even when the current entry was removed first.
func (m *orderedMap[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for l := m.head; l != nil; l = m.after(l) {
			if !yield(l.key, l.val) {
				return
			}
		}
	}
}

// after returns the first live link that follows l in insertion order.
//
// A removed link's next pointer is frozen at removal time and may end in nil
// although entries were appended since; the walk then resumes from the first
// live link stamped after the last link on the frozen chain.
func (m *orderedMap[K, V]) after(l *link[K, V]) *link[K, V] {
	if !l.removed {
		return l.next
	}
	for {
		if l.next == nil {
			return m.firstAfter(l.seq)
		}
		l = l.next
		if !l.removed {
			return l
		}
	}
}

// firstAfter returns the oldest live link with a stamp greater than seq.
// Cost is proportional to the number of links it skips over from the tail.
func (m *orderedMap[K, V]) firstAfter(seq uint64) *link[K, V] {
	var first *link[K, V]
	for l := m.tail; l != nil && l.seq > seq; l = l.prev {
		first = l
	}

	return first
}

func (m *orderedMap[K, V]) keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.all() {
			if !yield(k) {
				return
			}
		}
	}
}
