package oahash

import (
	"fmt"
	"strings"
)

// Strategy selects the collision resolution algorithm of a Map.
type Strategy int

const (
	// LinearProbing scans forward one slot at a time from the home bucket and
	// deletes with backward shifting.
	LinearProbing Strategy = iota
	// RobinHood displaces entries that sit closer to their home bucket than
	// the entry being inserted, bounding the variance of probe distances.
	RobinHood
)

func (s Strategy) String() string {
	switch s {
	case LinearProbing:
		return "linear"
	case RobinHood:
		return "robinhood"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the names returned by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "linear_probing", "linearprobing":
		return LinearProbing, nil
	case "robinhood", "robin_hood", "robin-hood":
		return RobinHood, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// prober walks the slot array of a map. Implementations never grow the table
// and never touch m.count; the engine does both.
type prober[K comparable, V any] interface {
	// insert places e, or overwrites the value of an equal key. It returns the
	// index that holds e.key afterwards and whether a new entry was added.
	// It returns -1 only when every slot is occupied by other keys.
	insert(m *Map[K, V], e slot[K, V]) (int, bool)
	// lookup returns the index of key, or -1.
	lookup(m *Map[K, V], key K, hash uint64) int
	// erase clears the slot at index and repairs the probe sequences after it.
	erase(m *Map[K, V], index int)
}

func newProber[K comparable, V any](s Strategy) prober[K, V] {
	if s == RobinHood {
		return robinHood[K, V]{}
	}
	return linearProbe[K, V]{}
}
