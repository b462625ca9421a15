package bench

import (
	"github.com/theflywheel/oahash"
)

// target is a map implementation under measurement
type target[K comparable] interface {
	insert(key K)
	find(key K) bool
	erase(key K)
	stats() map[string]float64
}

type oaTarget[K comparable] struct {
	m *oahash.Map[K, int]
}

func newOATarget[K comparable](opts ...oahash.Option) *oaTarget[K] {
	return &oaTarget[K]{m: oahash.New[K, int](opts...)}
}

func (t *oaTarget[K]) insert(key K)    { t.m.Insert(key, 0) }
func (t *oaTarget[K]) find(key K) bool { return !t.m.Find(key).Equal(t.m.End()) }
func (t *oaTarget[K]) erase(key K)     { t.m.Erase(key) }

func (t *oaTarget[K]) stats() map[string]float64 {
	st := t.m.ProbeStats()
	return map[string]float64{
		"capacity":    float64(t.m.Capacity()),
		"load_factor": float64(t.m.LoadFactor()),
		"max_probe":   float64(st.MaxDistance),
		"mean_probe":  st.MeanDistance,
	}
}

type builtinTarget[K comparable] struct {
	m map[K]int
}

func newBuiltinTarget[K comparable]() *builtinTarget[K] {
	return &builtinTarget[K]{m: make(map[K]int)}
}

func (t *builtinTarget[K]) insert(key K) { t.m[key] = 0 }

func (t *builtinTarget[K]) find(key K) bool {
	_, ok := t.m[key]
	return ok
}

func (t *builtinTarget[K]) erase(key K)               { delete(t.m, key) }
func (t *builtinTarget[K]) stats() map[string]float64 { return nil }
