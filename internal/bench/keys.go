package bench

import (
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

const (
	stringKeyLen = 32
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// makeKeys fills n keys from gen, overwrites the leading nonUnique fraction
// with copies of random keys and shuffles the result.
func makeKeys[K any](r *rand.Rand, n int, nonUnique float64, gen func(i int) K) []K {
	keys := make([]K, n)
	for i := range keys {
		keys[i] = gen(i)
	}
	dups := int(nonUnique * float64(n))
	for i := 0; i < dups; i++ {
		keys[i] = keys[r.Intn(n)]
	}
	r.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

func intKeys(r *rand.Rand, n int, nonUnique float64) []int {
	return makeKeys(r, n, nonUnique, func(i int) int { return i })
}

// stringKeys returns unique 32 byte keys: a decimal counter followed by a
// shuffled alphabet.
func stringKeys(r *rand.Rand, n int, nonUnique float64) []string {
	letters := []byte(alphabet)
	return makeKeys(r, n, nonUnique, func(i int) string {
		r.Shuffle(len(letters), func(a, b int) { letters[a], letters[b] = letters[b], letters[a] })
		s := strconv.Itoa(i) + string(letters)
		return s[:stringKeyLen]
	})
}

func uuidKeys(r *rand.Rand, n int, nonUnique float64) []uuid.UUID {
	return makeKeys(r, n, nonUnique, func(int) uuid.UUID {
		// rand.Rand.Read never fails.
		id, _ := uuid.NewRandomFromReader(r)
		return id
	})
}
