package oahash

import "iter"

// Iterator is a forward position in a Map. Iterators are plain values, so
// several independent positions may be held at once.
//
// Inserting a new key, Erase, Reserve and Rehash may move entries and so
// invalidate all iterators of the map. Lookups and updates of existing keys
// leave them valid.
type Iterator[K comparable, V any] struct {
	m   *Map[K, V]
	pos int
}

// Begin returns an iterator at the first occupied slot, or End() if the map
// is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{m: m, pos: -1}
	it.Next()
	return it
}

// End returns the position one past the last slot
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, pos: len(m.slots)}
}

// Next advances to the next occupied slot, stopping at End()
func (it *Iterator[K, V]) Next() {
	n := len(it.m.slots)
	if it.pos >= n {
		return
	}
	it.pos++
	for it.pos < n && !it.m.slots[it.pos].occupied {
		it.pos++
	}
}

// Done reports whether the iterator is at End()
func (it Iterator[K, V]) Done() bool {
	return it.pos >= len(it.m.slots)
}

// Equal reports whether both iterators point at the same position of the
// same map.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.m == other.m && it.pos == other.pos
}

func (it Iterator[K, V]) slot() *slot[K, V] {
	if it.Done() {
		panic("oahash: dereference of end iterator")
	}
	return &it.m.slots[it.pos]
}

// Key returns the key at the current position
func (it Iterator[K, V]) Key() K { return it.slot().key }

// Value returns the value at the current position
func (it Iterator[K, V]) Value() V { return it.slot().value }

// SetValue replaces the value at the current position
func (it Iterator[K, V]) SetValue(v V) { it.slot().value = v }

// Pair returns the entry at the current position
func (it Iterator[K, V]) Pair() Pair[K, V] { return it.slot().pair() }

// All yields every entry in slot order. The map must not be modified while
// ranging.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); !it.Done(); it.Next() {
			s := it.slot()
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Keys yields every key in slot order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in slot order
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
