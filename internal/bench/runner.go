package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/theflywheel/oahash"
)

const builtinName = "builtin"

// Runner executes a Config
type Runner struct {
	cfg    Config
	logger *zap.Logger
}

// NewRunner returns a runner for cfg. A nil logger discards output
func NewRunner(cfg Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run times every configured target at every size and returns the summary.
// It stops between sizes once ctx is done.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Summary{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		GoVersion:  runtime.Version(),
		SystemInfo: fmt.Sprintf("goos: %s goarch: %s", runtime.GOOS, runtime.GOARCH),
		Seed:       r.cfg.Seed,
	}

	rng := rand.New(rand.NewSource(r.cfg.Seed))
	var (
		results []Result
		err     error
	)
	switch r.cfg.KeyKind {
	case KeyInt:
		results, err = run[int](ctx, r, rng, intKeys)
	case KeyString:
		results, err = run[string](ctx, r, rng, stringKeys)
	case KeyUUID:
		results, err = run[uuid.UUID](ctx, r, rng, uuidKeys)
	}
	if err != nil {
		return nil, err
	}
	s.Results = results
	return s, nil
}

type keyGen[K comparable] func(r *rand.Rand, n int, nonUnique float64) []K

type namedTarget[K comparable] struct {
	name  string
	build func() target[K]
}

func targetsFor[K comparable](cfg Config, logger *zap.Logger) []namedTarget[K] {
	var out []namedTarget[K]
	for _, name := range cfg.Strategies {
		s, _ := oahash.ParseStrategy(name)
		opts := []oahash.Option{
			oahash.WithStrategy(s),
			oahash.WithMaxLoadFactor(cfg.MaxLoadFactor),
			oahash.WithLogger(logger),
		}
		out = append(out, namedTarget[K]{
			name:  s.String(),
			build: func() target[K] { return newOATarget[K](opts...) },
		})
	}
	if cfg.Builtin {
		out = append(out, namedTarget[K]{
			name:  builtinName,
			build: func() target[K] { return newBuiltinTarget[K]() },
		})
	}
	return out
}

// timings accumulates the durations of one target across repetitions
type timings struct {
	insert, lookup, erase time.Duration
	ops                   int
	stats                 map[string]float64
}

func (t *timings) metrics(reps int) map[string]float64 {
	m := make(map[string]float64, 3+len(t.stats))
	perOp := func(d time.Duration) float64 {
		if t.ops == 0 {
			return 0
		}
		return float64(d.Nanoseconds()) / float64(t.ops)
	}
	m["insert_ns_per_op"] = perOp(t.insert)
	m["lookup_ns_per_op"] = perOp(t.lookup)
	m["erase_ns_per_op"] = perOp(t.erase)
	m["repetitions"] = float64(reps)
	for k, v := range t.stats {
		m[k] = v
	}
	return m
}

func run[K comparable](ctx context.Context, r *Runner, rng *rand.Rand, gen keyGen[K]) ([]Result, error) {
	cfg := r.cfg
	targets := targetsFor[K](cfg, r.logger.Named("oahash"))

	var results []Result
	for _, size := range cfg.Sizes.Values() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		acc := make([]timings, len(targets))
		for rep := 0; rep < cfg.Repetitions; rep++ {
			keys := gen(rng, size, cfg.NonUnique)
			for i, nt := range targets {
				if err := measure(nt.build(), keys, &acc[i]); err != nil {
					return nil, fmt.Errorf("%s at size %d: %w", nt.name, size, err)
				}
			}
		}
		for i, nt := range targets {
			res := Result{
				Name:     fmt.Sprintf("%s/%s/%d", nt.name, cfg.KeyKind, size),
				Category: cfg.KeyKind,
				Target:   nt.name,
				Size:     size,
				Metrics:  acc[i].metrics(cfg.Repetitions),
			}
			r.logger.Info("measured",
				zap.String("target", nt.name),
				zap.Int("size", size),
				zap.Float64("insert_ns_per_op", res.Metrics["insert_ns_per_op"]),
				zap.Float64("lookup_ns_per_op", res.Metrics["lookup_ns_per_op"]),
				zap.Float64("erase_ns_per_op", res.Metrics["erase_ns_per_op"]))
			results = append(results, res)
		}
	}
	return results, nil
}

// measure inserts, looks up and erases keys in t, adding the elapsed times
// to acc. Every inserted key must be found again.
func measure[K comparable](t target[K], keys []K, acc *timings) error {
	start := time.Now()
	for _, k := range keys {
		t.insert(k)
	}
	acc.insert += time.Since(start)
	acc.stats = t.stats()

	start = time.Now()
	for _, k := range keys {
		if !t.find(k) {
			return fmt.Errorf("lookup of %v failed after insert", k)
		}
	}
	acc.lookup += time.Since(start)

	start = time.Now()
	for _, k := range keys {
		t.erase(k)
	}
	acc.erase += time.Since(start)
	acc.ops += len(keys)
	return nil
}
