package treemap

import (
	"cmp"
	"iter"
)

// Keys returns an iterator over the keys of m in ascending order.
//
// Clients must not modify m during iteration.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}
		for n := m.root.first(); n != nil; n = n.next() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// All returns an iterator over the entries of m in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for n := m.root.first(); n != nil; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries of m in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for n := m.root.last(); n != nil; n = n.prev() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Positions returns an iterator over the positions of m in ascending key order.
func (m *Map[K, V]) Positions() iter.Seq[Position[K, V]] {
	return func(yield func(Position[K, V]) bool) {
		if m == nil {
			return
		}
		for n := m.root.first(); n != nil; n = n.next() {
			if !yield(m.position(n)) {
				return
			}
		}
	}
}

// FindRange returns an iterator over all entries with start <= key < stop,
// in ascending key order. A nil start or stop leaves the range open on that
// side.
//
// The iterator may be used more than once; every iteration searches for start
// anew. For splay trees this search moves the start entry to the root.
func (m *Map[K, V]) FindRange(start, stop *K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.IsEmpty() {
			return
		}
		var n *node[K, V]
		if start == nil {
			n = m.root.first()
		} else {
			n = m.ceiling(*start)
		}
		for ; n != nil && (stop == nil || cmp.Less(n.key, *stop)); n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
