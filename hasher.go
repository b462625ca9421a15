package oahash

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to a 64-bit hash. Keys that are equal under the
// map's equality predicate must produce the same hash.
type HashFunc[K any] func(key K) uint64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

// DefaultHasher returns the hash function used when none is injected.
// Strings and integers are hashed with xxhash, everything else with a seeded
// maphash of the comparable value.
func DefaultHasher[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return xxhash.Sum64String(k)
		case int:
			return hashInteger(k)
		case int8:
			return hashInteger(k)
		case int16:
			return hashInteger(k)
		case int32:
			return hashInteger(k)
		case int64:
			return hashInteger(k)
		case uint:
			return hashInteger(k)
		case uint8:
			return hashInteger(k)
		case uint16:
			return hashInteger(k)
		case uint32:
			return hashInteger(k)
		case uint64:
			return hashInteger(k)
		case uintptr:
			return hashInteger(k)
		}
		return maphash.Comparable(seed, key)
	}
}

// DefaultEqual returns the == predicate for K.
func DefaultEqual[K comparable]() EqualFunc[K] {
	return func(a, b K) bool { return a == b }
}

func hashInteger[T constraints.Integer](v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}
