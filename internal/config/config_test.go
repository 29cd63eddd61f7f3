package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.KeepTags {
		t.Error("KeepTags should be true by default")
	}
	if cfg.KeepFinalFEN {
		t.Error("KeepFinalFEN should be false by default")
	}
}

// TestMatchConfig_Defaults verifies MatchConfig has sensible defaults
func TestMatchConfig_Defaults(t *testing.T) {
	cfg := NewMatchConfig()

	if cfg.Games != 1 {
		t.Errorf("Games = %d, want 1", cfg.Games)
	}
	if cfg.MaxRounds != 200 {
		t.Errorf("MaxRounds = %d, want 200", cfg.MaxRounds)
	}
	if cfg.White != "random" || cfg.Black != "random" {
		t.Errorf("players = %s/%s, want random/random", cfg.White, cfg.Black)
	}
	if cfg.Scripted() {
		t.Error("default config should not be scripted")
	}
}

// TestConfig_Validate verifies validation of every section
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func(b *ConfigBuilder)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			build:   func(b *ConfigBuilder) {},
			wantErr: false,
		},
		{
			name:    "greedy against human",
			build:   func(b *ConfigBuilder) { b.WithPlayers("greedy", "human") },
			wantErr: false,
		},
		{
			name:    "unlimited rounds",
			build:   func(b *ConfigBuilder) { b.WithMaxRounds(0) },
			wantErr: false,
		},
		{
			name:    "scripted single game",
			build:   func(b *ConfigBuilder) { b.WithMoves("1. e4 e5") },
			wantErr: false,
		},
		{
			name:    "no games",
			build:   func(b *ConfigBuilder) { b.WithGames(0) },
			wantErr: true,
		},
		{
			name:    "negative rounds",
			build:   func(b *ConfigBuilder) { b.WithMaxRounds(-1) },
			wantErr: true,
		},
		{
			name:    "unknown player",
			build:   func(b *ConfigBuilder) { b.WithPlayers("random", "stockfish") },
			wantErr: true,
		},
		{
			name:    "scripted many games",
			build:   func(b *ConfigBuilder) { b.WithMoves("e4").WithGames(3) },
			wantErr: true,
		},
		{
			name:    "negative workers",
			build:   func(b *ConfigBuilder) { b.WithWorkers(-2) },
			wantErr: true,
		},
		{
			name:    "verbosity too high",
			build:   func(b *ConfigBuilder) { b.WithVerbosity(3) },
			wantErr: true,
		},
		{
			name:    "line length too short",
			build:   func(b *ConfigBuilder) { b.WithMaxLineLength(5) },
			wantErr: true,
		},
		{
			name:    "unknown format",
			build:   func(b *ConfigBuilder) { b.WithOutputFormat(OutputFormat(7)) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewConfigBuilder()
			tt.build(b)
			err := b.Build().Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseOutputFormat verifies flag values map onto formats
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"", Text, false},
		{"json", JSON, false},
		{"pgn", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in && tt.in != "" {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	log := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithMaxLineLength(120).
		WithGames(4).
		WithWorkers(2).
		WithSeed(42).
		WithPlayers("greedy", "random").
		WithFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithFinalFEN(true).
		KeepTags(false).
		WithLog(log).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if cfg.Match.Games != 4 || cfg.Workers != 2 || cfg.Match.Seed != 42 {
		t.Errorf("games/workers/seed = %d/%d/%d, want 4/2/42", cfg.Match.Games, cfg.Workers, cfg.Match.Seed)
	}
	if cfg.Match.White != "greedy" {
		t.Errorf("White = %s, want greedy", cfg.Match.White)
	}
	if cfg.Match.FEN == "" {
		t.Error("FEN should be set")
	}
	if !cfg.Output.KeepFinalFEN || cfg.Output.KeepTags {
		t.Error("tag settings not applied")
	}
	if cfg.LogFile != log {
		t.Error("WithLog did not set LogFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
