package oahash

// linearProbe is plain linear probing with backward-shift deletion. No
// tombstones are ever written: after an erase every remaining key is still
// reachable by scanning forward from its home bucket without crossing an
// empty slot.
type linearProbe[K comparable, V any] struct{}

func (linearProbe[K, V]) insert(m *Map[K, V], e slot[K, V]) (int, bool) {
	n := len(m.slots)
	i := m.home(e.hash)
	for probes := 0; probes < n; probes++ {
		s := &m.slots[i]
		if !s.occupied {
			*s = e
			return i, true
		}
		if m.matches(s, e.key, e.hash) {
			s.value = e.value
			return i, false
		}
		i = m.next(i)
	}
	return -1, false
}

func (linearProbe[K, V]) lookup(m *Map[K, V], key K, hash uint64) int {
	n := len(m.slots)
	i := m.home(hash)
	for probes := 0; probes < n; probes++ {
		s := &m.slots[i]
		if !s.occupied {
			return -1
		}
		if m.matches(s, key, hash) {
			return i
		}
		i = m.next(i)
	}
	return -1
}

// erase vacates index and then walks the cluster that follows it. An entry
// moves into the hole only when the hole lies between its home bucket and its
// current slot, so it is never shifted in front of its own home. Entries that
// cannot move are skipped; the walk ends at the first empty slot.
func (linearProbe[K, V]) erase(m *Map[K, V], index int) {
	n := len(m.slots)
	hole := index
	for i, probes := m.next(index), 1; probes < n; i, probes = m.next(i), probes+1 {
		s := &m.slots[i]
		if !s.occupied {
			break
		}
		home := m.home(s.hash)
		if probeDistance(i, home, n) >= probeDistance(i, hole, n) {
			m.slots[hole] = *s
			hole = i
		}
	}
	m.slots[hole].clear()
}
