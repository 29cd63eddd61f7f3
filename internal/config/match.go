package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MatchConfig holds settings for the games being played.
type MatchConfig struct {
	// Games is the number of self-play games to run.
	Games int `yaml:"games"`

	// MaxRounds caps each game in plies; 0 means no limit.
	MaxRounds int `yaml:"max_rounds"`

	// Seed for the first game; game i uses Seed+i.
	Seed int64 `yaml:"seed"`

	// Player kinds for each side.
	White string `yaml:"white"`
	Black string `yaml:"black"`

	// FEN is the starting position; empty means the standard setup.
	FEN string `yaml:"fen"`

	// Moves is a scripted move list, e.g. "1. e4 e5 2. Nf3".
	Moves string `yaml:"moves"`
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Games:     1,
		MaxRounds: 200,
		Seed:      1,
		White:     "random",
		Black:     "random",
	}
}

// Scripted reports whether the games replay a move list.
func (m *MatchConfig) Scripted() bool {
	return m.Moves != ""
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	if m.Games < 1 {
		return fmt.Errorf("game count %d must be at least 1: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.MaxRounds < 0 {
		return fmt.Errorf("negative round limit %d: %w", m.MaxRounds, errors.ErrInvalidConfig)
	}
	for _, kind := range []string{m.White, m.Black} {
		if !knownKind(kind) {
			return fmt.Errorf("unknown player kind %q: %w", kind, errors.ErrInvalidConfig)
		}
	}
	if m.Scripted() && m.Games != 1 {
		return fmt.Errorf("a scripted move list plays exactly one game: %w", errors.ErrInvalidConfig)
	}
	return nil
}

func knownKind(kind string) bool {
	for _, k := range PlayerKinds {
		if k == kind {
			return true
		}
	}
	return false
}
