package oahash

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Map is an open addressing hash map. All entries live in a single slot
// array; collisions are resolved by the configured Strategy.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	slots    []slot[K, V]
	count    int
	policy   hashPolicy
	hash     HashFunc[K]
	equal    EqualFunc[K]
	strategy Strategy
	probe    prober[K, V]
	logger   *zap.Logger
}

// New returns an empty map using the default hash and equality of K
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewWithHasher[K, V](nil, nil, opts...)
}

// NewWithHasher returns an empty map with an injected hash function and
// equality predicate. A nil hash or equal falls back to the default.
func NewWithHasher[K comparable, V any](hash HashFunc[K], equal EqualFunc[K], opts ...Option) *Map[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if hash == nil {
		hash = DefaultHasher[K]()
	}
	if equal == nil {
		equal = DefaultEqual[K]()
	}
	return &Map[K, V]{
		slots:    make([]slot[K, V], o.capacity),
		policy:   hashPolicy{maxLoadFactor: o.maxLoadFactor},
		hash:     hash,
		equal:    equal,
		strategy: o.strategy,
		probe:    newProber[K, V](o.strategy),
		logger:   o.logger,
	}
}

// NewFromPairs builds a map holding pairs. The table is sized once up front.
// When a key repeats, the last pair wins.
func NewFromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	m.Reserve(len(pairs))
	m.InsertPairs(pairs...)
	return m
}

// Len returns the number of entries
func (m *Map[K, V]) Len() int { return m.count }

// Empty reports whether the map holds no entries
func (m *Map[K, V]) Empty() bool { return m.count == 0 }

// Capacity returns the number of slots
func (m *Map[K, V]) Capacity() int { return len(m.slots) }

// Strategy returns the probe strategy in use
func (m *Map[K, V]) Strategy() Strategy { return m.strategy }

// LoadFactor returns Len() / Capacity()
func (m *Map[K, V]) LoadFactor() float32 { return loadFactor(m.count, len(m.slots)) }

// MaxLoadFactor returns the load factor at which inserts grow the table
func (m *Map[K, V]) MaxLoadFactor() float32 { return m.policy.maxLoadFactor }

// SetMaxLoadFactor changes the growth threshold. It only affects future
// growth decisions; the table is not rehashed.
func (m *Map[K, V]) SetMaxLoadFactor(f float32) error {
	if err := validateLoadFactor(f); err != nil {
		return err
	}
	m.policy.maxLoadFactor = f
	return nil
}

func (m *Map[K, V]) home(hash uint64) int {
	return m.policy.bucket(hash, len(m.slots))
}

func (m *Map[K, V]) next(i int) int {
	i++
	if i == len(m.slots) {
		return 0
	}
	return i
}

func (m *Map[K, V]) matches(s *slot[K, V], key K, hash uint64) bool {
	return s.hash == hash && m.equal(s.key, key)
}

func (m *Map[K, V]) lookup(key K) int {
	return m.probe.lookup(m, key, m.hash(key))
}

func (m *Map[K, V]) insert(key K, value V) int {
	return m.insertHashed(key, value, m.hash(key))
}

// insertHashed upserts key and returns the slot index holding it once the
// call completes, growing the table if the insert pushed the load over the
// limit. hash must be m.hash(key).
func (m *Map[K, V]) insertHashed(key K, value V, hash uint64) int {
	e := slot[K, V]{key: key, value: value, hash: hash, occupied: true}
	idx, added := m.probe.insert(m, e)
	for idx < 0 {
		m.rehash(m.policy.grownCapacity(len(m.slots), len(m.slots)))
		idx, added = m.probe.insert(m, e)
	}
	if !added {
		return idx
	}
	m.count++
	if m.policy.shouldGrow(m.count, len(m.slots)) {
		m.rehash(m.policy.grownCapacity(len(m.slots), m.count))
		idx = m.probe.lookup(m, key, e.hash)
	}
	return idx
}

// Insert sets the value for key, overwriting any existing value
func (m *Map[K, V]) Insert(key K, value V) {
	m.insert(key, value)
}

// Index returns a pointer to the value of key, inserting the zero value
// first if the key is absent. The pointer is valid until the next call that
// adds, erases or rehashes.
func (m *Map[K, V]) Index(key K) *V {
	h := m.hash(key)
	if i := m.probe.lookup(m, key, h); i >= 0 {
		return &m.slots[i].value
	}
	var zero V
	return &m.slots[m.insertHashed(key, zero, h)].value
}

// Ref returns a pointer to the value of key, or ErrKeyNotFound. It never
// modifies the map.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	i := m.lookup(key)
	if i < 0 {
		return nil, keyNotFound(key)
	}
	return &m.slots[i].value, nil
}

// At returns the value of key, or ErrKeyNotFound
func (m *Map[K, V]) At(key K) (V, error) {
	i := m.lookup(key)
	if i < 0 {
		var zero V
		return zero, keyNotFound(key)
	}
	return m.slots[i].value, nil
}

// Get retrieves the value of key
func (m *Map[K, V]) Get(key K) (V, bool) {
	i := m.lookup(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.slots[i].value, true
}

// Contains reports whether key has an entry
func (m *Map[K, V]) Contains(key K) bool {
	return m.lookup(key) >= 0
}

// Find returns an iterator positioned at key, or End() when absent
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	i := m.lookup(key)
	if i < 0 {
		return m.End()
	}
	return Iterator[K, V]{m: m, pos: i}
}

// Erase removes key and reports whether it was present. Erase never changes
// the capacity.
func (m *Map[K, V]) Erase(key K) bool {
	i := m.lookup(key)
	if i < 0 {
		return false
	}
	m.probe.erase(m, i)
	m.count--
	return true
}

// InsertPairs upserts every pair in order, so the last value of a repeated
// key wins.
func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		*m.Index(p.Key) = p.Value
	}
}

// InsertSlices upserts keys[i] -> values[i] for every i
func (m *Map[K, V]) InsertSlices(keys []K, values []V) error {
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}
	for i, k := range keys {
		*m.Index(k) = values[i]
	}
	return nil
}

// Clear removes every entry and keeps the capacity
func (m *Map[K, V]) Clear() {
	clear(m.slots)
	m.count = 0
}

// Rehash rebuilds the table with n slots. n is raised to the smallest
// capacity that holds the current entries below the max load factor.
// It panics with ErrCapacityExhausted if n exceeds the largest capacity.
func (m *Map[K, V]) Rehash(n int) {
	if n > maxCapacity {
		panic(fmt.Errorf("%w: cannot rehash to %d slots", ErrCapacityExhausted, n))
	}
	if least := m.policy.capacityFor(m.count); n < least {
		n = least
	}
	m.rehash(n)
}

// Reserve grows the table so that n more entries can be inserted without a
// rehash. It never shrinks the table, and panics with ErrCapacityExhausted
// when no table could hold that many entries.
func (m *Map[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	if n > maxCapacity-m.count {
		panic(fmt.Errorf("%w: cannot reserve %d more entries", ErrCapacityExhausted, n))
	}
	if c := m.policy.capacityFor(m.count + n); c > len(m.slots) {
		m.rehash(c)
	}
}

func (m *Map[K, V]) rehash(capacity int) {
	old := m.slots
	m.logger.Debug("rehash",
		zap.Stringer("strategy", m.strategy),
		zap.Int("from", len(old)),
		zap.Int("to", capacity),
		zap.Int("len", m.count))

	m.slots = make([]slot[K, V], capacity)
	for i := range old {
		if old[i].occupied {
			m.probe.insert(m, old[i])
		}
	}
}

// ProbeStats summarizes how far entries sit from their home buckets
type ProbeStats struct {
	MaxDistance  int
	MeanDistance float64
}

// ProbeStats walks the table and reports probe distance statistics
func (m *Map[K, V]) ProbeStats() ProbeStats {
	var st ProbeStats
	if m.count == 0 {
		return st
	}
	total := 0
	for i := range m.slots {
		s := &m.slots[i]
		if !s.occupied {
			continue
		}
		d := probeDistance(i, m.home(s.hash), len(m.slots))
		total += d
		if d > st.MaxDistance {
			st.MaxDistance = d
		}
	}
	st.MeanDistance = float64(total) / float64(m.count)
	return st
}

// String renders the entries in slot order, e.g. map[1:2 3:4]
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for it := m.Begin(); !it.Done(); it.Next() {
		if b.Len() > len("map[") {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", it.Key(), it.Value())
	}
	b.WriteByte(']')
	return b.String()
}
