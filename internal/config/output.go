package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON records
	Format OutputFormat `yaml:"format"`

	// MaxLineLength is the maximum line length for move text
	MaxLineLength uint `yaml:"max_line_length"`

	// KeepTags controls whether tag pairs precede the move text
	KeepTags bool `yaml:"tags"`

	// KeepFinalFEN adds the final position as a tag
	KeepFinalFEN bool `yaml:"final_fen"`

	// SuppressDuplicates drops games that repeat an earlier one
	SuppressDuplicates bool `yaml:"suppress_duplicates"`

	// ExactDuplicates requires the same moves, not just the same final position
	ExactDuplicates bool `yaml:"exact_duplicates"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		MaxLineLength: 80,
		KeepTags:      true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("unknown output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength != 0 && o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
