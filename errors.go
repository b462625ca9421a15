package oahash

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by At and Ref when the key has no entry.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidLoadFactor is returned when a max load factor outside (0, 1] is requested.
	ErrInvalidLoadFactor = errors.New("invalid max load factor")

	// ErrLengthMismatch is returned by InsertSlices when keys and values differ in length.
	ErrLengthMismatch = errors.New("keys and values length mismatch")

	// ErrCapacityExhausted is carried by the panic raised when the slot array
	// cannot grow any further.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("unknown probe strategy")
)

func keyNotFound[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}
