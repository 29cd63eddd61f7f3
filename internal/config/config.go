// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how finished games are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Tag pairs followed by the move text
	JSON                     // One JSON document per run, or one object per line
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// ParseOutputFormat maps a flag value onto an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Player kinds understood by the CLI.
var PlayerKinds = []string{"random", "greedy", "human"}

// Config holds all settings for one run of chess-rules.
type Config struct {
	// Verbosity controls log output: 0 silent, 1 results, 2 every move.
	Verbosity int

	// Output files
	OutputFile io.Writer
	LogFile    io.Writer

	// Settings for the games themselves.
	Match *MatchConfig

	// Output formatting.
	Output *OutputConfig

	// Workers is the number of games played concurrently.
	Workers int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Match:      NewMatchConfig(),
		Output:     NewOutputConfig(),
		Workers:    1,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// SetOutput redirects game records to w.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
