package oahash_test

import (
	"errors"
	"fmt"

	"github.com/theflywheel/oahash"
)

func identity(k int) uint64 { return uint64(k) }

func Example() {
	m := oahash.New[string, int](oahash.WithStrategy(oahash.RobinHood))
	m.Insert("apples", 3)
	*m.Index("pears") += 2

	v, _ := m.At("apples")
	fmt.Println(v, m.Len())

	_, err := m.At("plums")
	fmt.Println(errors.Is(err, oahash.ErrKeyNotFound))
	// Output:
	// 3 2
	// true
}

func ExampleMap_Begin() {
	m := oahash.NewWithHasher[int, string](identity, nil, oahash.WithCapacity(8))
	m.Insert(3, "c")
	m.Insert(1, "a")
	m.Insert(6, "f")

	for it := m.Begin(); !it.Done(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}
	// Output:
	// 1 a
	// 3 c
	// 6 f
}

func ExampleMap_Erase() {
	m := oahash.NewWithHasher[int, string](identity, nil, oahash.WithCapacity(8))
	m.Insert(5, "five")
	m.Insert(13, "thirteen") // collides with 5
	m.Erase(5)

	v, err := m.At(13)
	fmt.Println(v, err)
	fmt.Println(m)
	// Output:
	// thirteen <nil>
	// map[13:thirteen]
}

func ExampleMap_Reserve() {
	m := oahash.New[int, int]()
	m.Reserve(100)
	before := m.Capacity()
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	fmt.Println(before == m.Capacity(), m.LoadFactor() < m.MaxLoadFactor())
	// Output:
	// true true
}
