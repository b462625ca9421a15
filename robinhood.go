package oahash

// robinHood is Robin Hood hashing on top of linear probing. Along any probe
// walk the distance of the resident entries from their home buckets never
// drops below the distance walked so far unless the searched key is absent,
// which is what lets lookups stop early.
type robinHood[K comparable, V any] struct{}

func (robinHood[K, V]) distance(m *Map[K, V], index int) int {
	return probeDistance(index, m.home(m.slots[index].hash), len(m.slots))
}

func (r robinHood[K, V]) insert(m *Map[K, V], e slot[K, V]) (int, bool) {
	n := len(m.slots)
	i := m.home(e.hash)
	carried := e
	dist := 0
	placed := -1
	for probes := 0; probes < n; probes++ {
		s := &m.slots[i]
		if !s.occupied {
			*s = carried
			if placed < 0 {
				placed = i
			}
			return placed, true
		}
		// Only the original key can be a duplicate. Entries displaced later
		// are already unique in the table.
		if placed < 0 && m.matches(s, e.key, e.hash) {
			s.value = e.value
			return i, false
		}
		if d := r.distance(m, i); d < dist {
			carried, *s = *s, carried
			if placed < 0 {
				placed = i
			}
			dist = d
		}
		i = m.next(i)
		dist++
	}
	return -1, false
}

func (r robinHood[K, V]) lookup(m *Map[K, V], key K, hash uint64) int {
	n := len(m.slots)
	i := m.home(hash)
	for dist := 0; dist < n; dist++ {
		s := &m.slots[i]
		if !s.occupied || r.distance(m, i) < dist {
			return -1
		}
		if m.matches(s, key, hash) {
			return i
		}
		i = m.next(i)
	}
	return -1
}

// erase shifts the run after index back by one slot, stopping at the first
// empty slot or at an entry already sitting in its home bucket. Each shifted
// entry ends up one step closer to home.
func (r robinHood[K, V]) erase(m *Map[K, V], index int) {
	n := len(m.slots)
	hole := index
	for i, probes := m.next(index), 1; probes < n; i, probes = m.next(i), probes+1 {
		if !m.slots[i].occupied || r.distance(m, i) == 0 {
			break
		}
		m.slots[hole] = m.slots[i]
		hole = i
	}
	m.slots[hole].clear()
}
