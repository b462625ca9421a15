/*
Package oahash provides an open addressing hash map.

Map stores every entry directly in one flat slot array; there are no
per-entry allocations and no tombstones. Collisions are resolved by one of
two probe strategies chosen at construction.

Basic usage:

	import "github.com/theflywheel/oahash"

	m := oahash.New[string, int](oahash.WithStrategy(oahash.RobinHood))
	m.Insert("apples", 3)
	*m.Index("pears") += 2 // inserts the zero value first

	n, err := m.At("plums")
	if errors.Is(err, oahash.ErrKeyNotFound) {
		// absent
	}

	for it := m.Begin(); !it.Done(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

Features:

  - Generic keys and values with injectable hash and equality functions
  - Linear probing with backward-shift deletion
  - Robin Hood hashing with early-exit lookups and backward-shift deletion
  - Automatic doubling when the load factor reaches the maximum (0.7 by default)
  - Reserve and Rehash for explicit sizing
  - Forward iterators plus range-over-func views (All, Keys, Values)

Implementation Details:

Each slot holds a key, a value, the cached 64-bit hash of the key and an
occupied flag. The home bucket of a key is hash mod capacity. The table
starts with two slots and doubles whenever an insert that adds a key leaves
Len()/Capacity() at or above the maximum load factor, so at rest the load
factor is always below it.

Linear probing scans forward one slot at a time. Erase vacates the slot and
pulls later entries of the same cluster back into the hole whenever that does
not move them in front of their home bucket.

Robin Hood hashing tracks the probe distance of every entry, the number of
steps it sits past its home bucket. An insert that meets a resident entry
closer to home than itself takes that slot and carries the resident forward.
Lookups stop as soon as they meet an entry closer to home than the distance
walked. Erase shifts the following run back by one until it reaches an empty
slot or an entry already at home.

A Map is not safe for concurrent use.
*/
package oahash
