// Released under an MIT license. See LICENSE.

// Package config loads bfpp's optional TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/michaelmacinnis/bfpp/internal/type/tape"
)

// T (config) mirrors the configuration file.
//
//	[tape]
//	initial = 100
//	max = 30000
//	growth = 1.5
type T struct {
	Tape Tape `toml:"tape"`
}

// Tape configures the size of every tape.
type Tape struct {
	Initial int     `toml:"initial"`
	Max     int     `toml:"max"`
	Growth  float64 `toml:"growth"`
}

// Default returns the configuration used when no file is given.
func Default() *T {
	d := tape.DefaultConfig()

	return &T{
		Tape: Tape{
			Initial: d.Initial,
			Max:     d.Max,
			Growth:  d.Growth,
		},
	}
}

// Load reads the file at path. Keys missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (*T, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	return Parse(path, string(data))
}

// Parse decodes the TOML in text. Label names the source in errors.
func Parse(label, text string) (*T, error) {
	c := Default()

	md, err := toml.Decode(text, c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", label, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), label)
	}

	if err := c.TapeConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid tape settings in %s: %w", label, err)
	}

	return c, nil
}

// TapeConfig returns the tape settings in the form the engine uses.
func (c *T) TapeConfig() tape.Config {
	return tape.Config{
		Initial: c.Tape.Initial,
		Max:     c.Tape.Max,
		Growth:  c.Tape.Growth,
	}
}
