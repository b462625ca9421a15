package main

import (
	"errors"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/theflywheel/oahash"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	for _, s := range []oahash.Strategy{oahash.LinearProbing, oahash.RobinHood} {
		fmt.Printf("== %s ==\n", s)
		demo(s, logger)
		fmt.Println()
	}
}

func demo(s oahash.Strategy, logger *zap.Logger) {
	// Identity hashing makes the slot positions easy to follow.
	identity := func(k int) uint64 { return uint64(k) }
	m := oahash.NewWithHasher[int, int](identity, nil,
		oahash.WithStrategy(s),
		oahash.WithLogger(logger))
	if err := m.SetMaxLoadFactor(0.5); err != nil {
		log.Fatalf("Failed to set max load factor: %v", err)
	}

	// Insert some data; the table grows as it fills up
	for _, k := range []int{1, 2, 3, 4} {
		m.Insert(k, k*10)
		fmt.Printf("Inserted %d, len=%d capacity=%d load=%.2f\n", k, m.Len(), m.Capacity(), m.LoadFactor())
	}

	// Update through the index operator
	*m.Index(2) = 99
	fmt.Println("Updated 2 =>", *m.Index(2))

	// Erase and verify the remaining keys are still reachable
	m.Erase(3)
	for _, k := range []int{1, 2, 3, 4} {
		v, err := m.At(k)
		if errors.Is(err, oahash.ErrKeyNotFound) {
			fmt.Printf("Key %d not found\n", k)
			continue
		}
		fmt.Printf("Key %d => Value %d\n", k, v)
	}

	// Walk the table in slot order
	for it := m.Begin(); !it.Done(); it.Next() {
		fmt.Printf("  %d: %d\n", it.Key(), it.Value())
	}
	st := m.ProbeStats()
	fmt.Printf("%v (max probe %d, mean %.2f)\n", m, st.MaxDistance, st.MeanDistance)
}
