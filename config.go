package oahash

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the file form of the construction options.
//
//	strategy = "robinhood"
//	max-load-factor = 0.6
//	capacity = 1024
type Config struct {
	Strategy      string  `toml:"strategy"`
	MaxLoadFactor float32 `toml:"max-load-factor"`
	Capacity      int     `toml:"capacity"`
}

// DecodeConfig parses a TOML document into a Config and validates it.
func DecodeConfig(data string) (Config, error) {
	var c Config
	if _, err := toml.Decode(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the fields that are set. Zero values mean "default".
func (c Config) Validate() error {
	if c.Strategy != "" {
		if _, err := ParseStrategy(c.Strategy); err != nil {
			return err
		}
	}
	if c.MaxLoadFactor != 0 {
		if err := validateLoadFactor(c.MaxLoadFactor); err != nil {
			return err
		}
	}
	if c.Capacity < 0 {
		return fmt.Errorf("invalid capacity %d", c.Capacity)
	}
	return nil
}

// Options converts the config to construction options. It assumes Validate
// passed.
func (c Config) Options() []Option {
	var opts []Option
	if s, err := ParseStrategy(c.Strategy); err == nil {
		opts = append(opts, WithStrategy(s))
	}
	if c.MaxLoadFactor != 0 {
		opts = append(opts, WithMaxLoadFactor(c.MaxLoadFactor))
	}
	if c.Capacity != 0 {
		opts = append(opts, WithCapacity(c.Capacity))
	}
	return opts
}
