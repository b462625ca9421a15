// Command oabench times the open addressing map strategies against the
// builtin map and writes a JSON summary.
//
//	oabench -config bench.toml -out results.json
//	oabench -config bench.toml -base baseline.json -threshold 5
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/theflywheel/oahash/internal/bench"
)

var (
	configPath = flag.String("config", "", "benchmark config file (TOML); defaults are used when empty")
	outPath    = flag.String("out", "benchmark-results.json", "summary output file, - for stdout")
	basePath   = flag.String("base", "", "previous summary to compare against")
	threshold  = flag.Float64("threshold", 5, "percent change that counts as significant")
	verbose    = flag.Bool("v", false, "development logging with debug output")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("oabench failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg := bench.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = bench.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	logger.Info("starting benchmark",
		zap.String("key-kind", cfg.KeyKind),
		zap.Strings("strategies", cfg.Strategies),
		zap.Bool("builtin", cfg.Builtin),
		zap.Ints("sizes", cfg.Sizes.Values()),
		zap.Int("repetitions", cfg.Repetitions),
		zap.Uint64("seed", cfg.Seed))

	summary, err := bench.NewRunner(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	if *outPath == "-" {
		if err := summary.WriteJSON(os.Stdout); err != nil {
			return err
		}
	} else {
		if err := summary.WriteFile(*outPath); err != nil {
			return err
		}
		logger.Info("summary written", zap.String("path", *outPath), zap.Int("results", len(summary.Results)))
	}

	if *basePath == "" {
		return nil
	}
	base, err := bench.ReadSummary(*basePath)
	if err != nil {
		return err
	}
	regressions := 0
	for _, c := range bench.Compare(base, summary, *threshold) {
		for _, m := range c.Metrics {
			if !m.IsSignificant {
				continue
			}
			logger.Info("metric changed",
				zap.String("name", c.Name),
				zap.String("metric", m.Name),
				zap.Float64("base", m.BaseValue),
				zap.Float64("current", m.CurrentValue),
				zap.Float64("percent", m.PercentChange),
				zap.Bool("regression", m.IsRegression))
		}
		if c.HasRegressions {
			regressions++
		}
	}
	if regressions > 0 {
		return fmt.Errorf("%d benchmarks regressed by at least %.1f%%", regressions, *threshold)
	}
	return nil
}
