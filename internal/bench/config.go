// Package bench times the open addressing map against the builtin map and
// produces JSON summaries that can be compared run over run.
package bench

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/theflywheel/oahash"
)

// Key kinds understood by the runner.
const (
	KeyInt    = "int"
	KeyString = "string"
	KeyUUID   = "uuid"
)

// Range is a half-open, stepped range of table sizes
type Range struct {
	Start int `toml:"start"`
	Stop  int `toml:"stop"`
	Step  int `toml:"step"`
}

// Values expands the range. Step must be positive
func (r Range) Values() []int {
	var out []int
	for i := r.Start; i < r.Stop; i += r.Step {
		out = append(out, i)
	}
	return out
}

// Config drives a benchmark run
type Config struct {
	Sizes       Range    `toml:"sizes"`
	Repetitions int      `toml:"repetitions"`
	KeyKind     string   `toml:"key-kind"`
	Strategies  []string `toml:"strategies"`
	// Builtin adds the Go map as a baseline target.
	Builtin       bool    `toml:"builtin"`
	MaxLoadFactor float32 `toml:"max-load-factor"`
	// NonUnique is the fraction of generated keys replaced by duplicates.
	NonUnique float64 `toml:"non-unique"`
	Seed      uint64  `toml:"seed"`
}

// DefaultConfig returns a small run over both strategies with int keys
func DefaultConfig() Config {
	return Config{
		Sizes:         Range{Start: 10_000, Stop: 110_000, Step: 20_000},
		Repetitions:   3,
		KeyKind:       KeyInt,
		Strategies:    []string{oahash.LinearProbing.String(), oahash.RobinHood.String()},
		Builtin:       true,
		MaxLoadFactor: oahash.DefaultMaxLoadFactor,
		Seed:          1,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode bench config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the runner cannot use
func (c *Config) Validate() error {
	if c.Sizes.Step <= 0 {
		return fmt.Errorf("sizes.step must be positive, got %d", c.Sizes.Step)
	}
	if c.Sizes.Start < 0 || c.Sizes.Stop <= c.Sizes.Start {
		return fmt.Errorf("invalid size range [%d, %d)", c.Sizes.Start, c.Sizes.Stop)
	}
	if c.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be positive, got %d", c.Repetitions)
	}
	switch c.KeyKind {
	case KeyInt, KeyString, KeyUUID:
	default:
		return fmt.Errorf("unknown key kind %q", c.KeyKind)
	}
	if len(c.Strategies) == 0 && !c.Builtin {
		return errors.New("no benchmark targets configured")
	}
	for _, s := range c.Strategies {
		if _, err := oahash.ParseStrategy(s); err != nil {
			return err
		}
	}
	if c.NonUnique < 0 || c.NonUnique >= 1 {
		return fmt.Errorf("non-unique must be in [0, 1), got %v", c.NonUnique)
	}
	mc := oahash.Config{MaxLoadFactor: c.MaxLoadFactor}
	return mc.Validate()
}
