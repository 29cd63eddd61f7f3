package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// fileConfig is the YAML layout of a configuration file, e.g.
//
//	verbosity: 2
//	workers: 4
//	match:
//	  games: 50
//	  white: greedy
//	output:
//	  format: json
type fileConfig struct {
	Verbosity int           `yaml:"verbosity"`
	Workers   int           `yaml:"workers"`
	Match     *MatchConfig  `yaml:"match"`
	Output    *OutputConfig `yaml:"output"`
}

// UnmarshalYAML accepts the flag spellings "text" and "json".
func (f *OutputFormat) UnmarshalYAML(value *yaml.Node) error {
	format, err := ParseOutputFormat(value.Value)
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// LoadYAML overlays settings read from r onto c. Keys missing from the
// document keep their current values; unknown keys are rejected.
func (c *Config) LoadYAML(r io.Reader) error {
	match, out := *c.Match, *c.Output
	fc := fileConfig{
		Verbosity: c.Verbosity,
		Workers:   c.Workers,
		Match:     &match,
		Output:    &out,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		if errors.Is(err, errors.ErrInvalidConfig) {
			return err
		}
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	c.Verbosity = fc.Verbosity
	c.Workers = fc.Workers
	if fc.Match != nil {
		*c.Match = *fc.Match
	}
	if fc.Output != nil {
		*c.Output = *fc.Output
	}
	return nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.LoadYAML(f)
}
