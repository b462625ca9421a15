package oahash

// Pair is a key/value view of an occupied slot.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// slot is the storage unit of the table. key, value and hash are meaningless
// unless occupied is set.
type slot[K, V any] struct {
	key      K
	value    V
	hash     uint64
	occupied bool
}

func (s *slot[K, V]) pair() Pair[K, V] {
	return Pair[K, V]{Key: s.key, Value: s.value}
}

// clear resets the slot to the empty state and drops references held by the
// old key and value.
func (s *slot[K, V]) clear() {
	*s = slot[K, V]{}
}
