package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// KeepTags controls whether tag pairs are written.
func (b *ConfigBuilder) KeepTags(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepTags = keep
	return b
}

// WithFinalFEN adds the final position to each record.
func (b *ConfigBuilder) WithFinalFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.KeepFinalFEN = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled, exact bool) *ConfigBuilder {
	b.cfg.Output.SuppressDuplicates = enabled
	b.cfg.Output.ExactDuplicates = exact
	return b
}

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Match.Games = n
	return b
}

// WithMaxRounds sets the per-game ply limit.
func (b *ConfigBuilder) WithMaxRounds(n int) *ConfigBuilder {
	b.cfg.Match.MaxRounds = n
	return b
}

// WithSeed sets the seed of the first game.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Match.Seed = seed
	return b
}

// WithPlayers sets the player kinds for each side.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Match.White = white
	b.cfg.Match.Black = black
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Match.FEN = fen
	return b
}

// WithMoves sets a scripted move list.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Match.Moves = moves
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
