// This file contains benchmarks comparing both probe strategies against the
// builtin map. It measures:
//   - Sequential insertion from an empty table (growth included)
//   - Lookup of present keys
//   - Lookup of absent keys
//   - Erase of every key
package oahash_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/google/uuid"

	"github.com/theflywheel/oahash"
)

var benchSizes = []int{1_000, 100_000, 1_000_000}

func intKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i * 7919
	}
	return keys
}

func stringKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

// uuidKeys generates random version 4 UUIDs, a common real-world key shape.
func uuidKeys(n int) []uuid.UUID {
	keys := make([]uuid.UUID, n)
	for i := range keys {
		keys[i] = uuid.New()
	}
	return keys
}

func benchmarkKeys[K comparable](b *testing.B, keys []K, missing []K) {
	for _, s := range []oahash.Strategy{oahash.LinearProbing, oahash.RobinHood} {
		b.Run(s.String()+"/insert", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := oahash.New[K, int](oahash.WithStrategy(s))
				for j, k := range keys {
					m.Insert(k, j)
				}
			}
		})

		m := oahash.New[K, int](oahash.WithStrategy(s))
		for j, k := range keys {
			m.Insert(k, j)
		}

		b.Run(s.String()+"/lookup", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, k := range keys {
					if _, ok := m.Get(k); !ok {
						b.Fatal("missing key")
					}
				}
			}
		})
		b.Run(s.String()+"/lookup-miss", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, k := range missing {
					if m.Contains(k) {
						b.Fatal("unexpected key")
					}
				}
			}
			st := m.ProbeStats()
			b.ReportMetric(float64(st.MaxDistance), "max-probe")
			b.ReportMetric(st.MeanDistance, "mean-probe")
		})
		b.Run(s.String()+"/erase", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m := oahash.New[K, int](oahash.WithStrategy(s))
				m.Reserve(len(keys))
				for j, k := range keys {
					m.Insert(k, j)
				}
				b.StartTimer()
				for _, k := range keys {
					m.Erase(k)
				}
			}
		})
	}

	b.Run("builtin/insert", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			m := make(map[K]int)
			for j, k := range keys {
				m[k] = j
			}
		}
	})
	b.Run("builtin/lookup", func(b *testing.B) {
		m := make(map[K]int, len(keys))
		for j, k := range keys {
			m[k] = j
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for _, k := range keys {
				if _, ok := m[k]; !ok {
					b.Fatal("missing key")
				}
			}
		}
	})
}

func BenchmarkIntKeys(b *testing.B) {
	for _, n := range benchSizes {
		keys := intKeys(2 * n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkKeys(b, keys[:n], keys[n:])
		})
	}
}

func BenchmarkStringKeys(b *testing.B) {
	for _, n := range benchSizes[:2] {
		keys := stringKeys(2 * n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkKeys(b, keys[:n], keys[n:])
		})
	}
}

func BenchmarkUUIDKeys(b *testing.B) {
	for _, n := range benchSizes[:2] {
		keys := uuidKeys(2 * n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkKeys(b, keys[:n], keys[n:])
		})
	}
}
