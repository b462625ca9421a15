package oahash

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxLoadFactor is the load factor at which an insert grows the table.
	DefaultMaxLoadFactor float32 = 0.7

	// MinCapacity is the number of slots of a freshly constructed map.
	MinCapacity = 2

	growthFactor = 2
	maxCapacity  = math.MaxInt / growthFactor
)

// hashPolicy turns hashes into buckets and decides when the slot array grows.
type hashPolicy struct {
	maxLoadFactor float32
}

func (p hashPolicy) bucket(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}

func loadFactor(count, capacity int) float32 {
	if capacity == 0 {
		return 0
	}
	return float32(count) / float32(capacity)
}

// shouldGrow compares in float64 so that capacityFor stays exact for large
// sizes.
func (p hashPolicy) shouldGrow(count, capacity int) bool {
	return float64(count) >= float64(p.maxLoadFactor)*float64(capacity)
}

// capacityFor returns the smallest capacity that holds n entries strictly
// below the max load factor. It panics with ErrCapacityExhausted when that
// capacity would exceed maxCapacity.
func (p hashPolicy) capacityFor(n int) int {
	f := math.Ceil(float64(n) / float64(p.maxLoadFactor))
	if n > maxCapacity || f > float64(maxCapacity) {
		panic(fmt.Errorf("%w: cannot hold %d entries", ErrCapacityExhausted, n))
	}
	c := max(int(f), MinCapacity)
	for p.shouldGrow(n, c) {
		c++
	}
	if c > maxCapacity {
		panic(fmt.Errorf("%w: cannot hold %d entries", ErrCapacityExhausted, n))
	}
	return c
}

// grownCapacity doubles capacity until count fits below the max load factor.
// A lowered max load factor may need more than one doubling.
func (p hashPolicy) grownCapacity(capacity, count int) int {
	c := capacity
	for p.shouldGrow(count, c) {
		if c > maxCapacity {
			panic(fmt.Errorf("%w: cannot grow beyond %d slots", ErrCapacityExhausted, c))
		}
		c *= growthFactor
	}
	return c
}

func validateLoadFactor(f float32) error {
	if !(f > 0 && f <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidLoadFactor, f)
	}
	return nil
}

// probeDistance is how many steps index lies past home, wrapping at capacity.
func probeDistance(index, home, capacity int) int {
	d := index - home
	if d < 0 {
		d += capacity
	}
	return d
}
