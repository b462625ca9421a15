package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func smallConfig(kind string) Config {
	cfg := DefaultConfig()
	cfg.Sizes = Range{Start: 100, Stop: 500, Step: 200}
	cfg.Repetitions = 2
	cfg.KeyKind = kind
	cfg.NonUnique = 0.1
	return cfg
}

func TestRun(t *testing.T) {
	for _, kind := range []string{KeyInt, KeyString, KeyUUID} {
		t.Run(kind, func(t *testing.T) {
			s, err := NewRunner(smallConfig(kind), zaptest.NewLogger(t)).Run(context.Background())
			require.NoError(t, err)
			require.NotEmpty(t, s.GoVersion)
			require.NotEmpty(t, s.Timestamp)

			// Two sizes times two strategies plus the builtin map.
			require.Len(t, s.Results, 6)
			targets := map[string]int{}
			for _, res := range s.Results {
				targets[res.Target]++
				require.Equal(t, kind, res.Category)
				require.Contains(t, []int{100, 300}, res.Size)
				require.Contains(t, res.Metrics, "insert_ns_per_op")
				require.Contains(t, res.Metrics, "lookup_ns_per_op")
				require.Contains(t, res.Metrics, "erase_ns_per_op")
				require.Equal(t, 2.0, res.Metrics["repetitions"])
				if res.Target != builtinName {
					require.Less(t, res.Metrics["load_factor"], 0.7)
					require.Greater(t, res.Metrics["capacity"], 0.0)
				}
			}
			require.Equal(t, map[string]int{"linear": 2, "robinhood": 2, builtinName: 2}, targets)
		})
	}
}

func TestRunNames(t *testing.T) {
	cfg := smallConfig(KeyInt)
	cfg.Strategies = []string{"robin-hood"}
	cfg.Builtin = false

	s, err := NewRunner(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, s.Results, 2)
	require.Equal(t, "robinhood/int/100", s.Results[0].Name)
	require.Equal(t, "robinhood/int/300", s.Results[1].Name)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(smallConfig(KeyInt), nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(KeyInt)
	cfg.Repetitions = 0
	_, err := NewRunner(cfg, nil).Run(context.Background())
	require.Error(t, err)
}

func TestMeasureDetectsLostKeys(t *testing.T) {
	var acc timings
	err := measure[int](lossyTarget{}, []int{1, 2, 3}, &acc)
	require.ErrorContains(t, err, "lookup of 1 failed")
}

type lossyTarget struct{}

func (lossyTarget) insert(int)                {}
func (lossyTarget) find(int) bool             { return false }
func (lossyTarget) erase(int)                 {}
func (lossyTarget) stats() map[string]float64 { return nil }
