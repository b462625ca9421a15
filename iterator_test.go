package oahash

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginSkipsLeadingEmptySlots(t *testing.T) {
	m := NewWithHasher[int, int](identityHash, nil, WithCapacity(8))
	require.True(t, m.Begin().Equal(m.End()))
	require.True(t, m.Begin().Done())

	m.Insert(5, 50)
	it := m.Begin()
	require.Equal(t, 5, it.pos)
	require.Equal(t, 5, it.Key())
	require.Equal(t, 50, it.Value())

	it.Next()
	require.True(t, it.Equal(m.End()))
	require.Equal(t, m.Capacity(), it.pos)

	// advancing past the end stays at the end
	it.Next()
	require.True(t, it.Equal(m.End()))
}

func TestIterationCompleteness(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			m := New[int, int](WithStrategy(s))
			want := []Pair[int, int]{{1, 1}, {2, 2}, {4, 4}, {5, 5}, {10, 10}}
			m.InsertPairs(want...)

			var got []Pair[int, int]
			for it := m.Begin(); !it.Equal(m.End()); it.Next() {
				got = append(got, it.Pair())
			}
			sort.Slice(got, func(i, j int) bool { return got[i].Key < got[j].Key })
			require.Equal(t, want, got)

			var keys, values []int
			for k := range m.Keys() {
				keys = append(keys, k)
			}
			for v := range m.Values() {
				values = append(values, v)
			}
			assert.ElementsMatch(t, []int{1, 2, 4, 5, 10}, keys)
			assert.ElementsMatch(t, []int{1, 2, 4, 5, 10}, values)
		})
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	m := New[string, int]()
	m.InsertPairs(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}, Pair[string, int]{"c", 3})

	first := m.Begin()
	second := first
	second.Next()
	require.False(t, first.Equal(second))
	require.NotEqual(t, first.Key(), second.Key())

	// a copy taken at the same position compares equal
	third := m.Begin()
	require.True(t, first.Equal(third))
}

func TestFindAndSetValue(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			m := New[int, int](WithStrategy(s))
			for _, k := range []int{1, 2, 4, 5, 10} {
				m.Insert(k, k)
			}
			for _, k := range []int{3, 6, 7, 8, 9} {
				require.True(t, m.Find(k).Equal(m.End()), "key %d", k)
			}
			it := m.Find(4)
			require.Equal(t, 4, it.Key())
			it.SetValue(40)
			v, _ := m.At(4)
			require.Equal(t, 40, v)

			// lookups and in-place updates keep the iterator valid
			m.Insert(4, 41)
			_, _ = m.Get(10)
			require.Equal(t, 41, it.Value())
			require.True(t, it.Equal(m.Find(4)))
		})
	}
}

func TestDereferenceEndPanics(t *testing.T) {
	m := New[int, int]()
	m.Insert(1, 1)
	require.PanicsWithValue(t, "oahash: dereference of end iterator", func() { m.End().Key() })
	require.Panics(t, func() { m.Find(2).Value() })
}

func TestAllStopsWhenYieldReturnsFalse(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}
