// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Configuration file
	configFile = flag.String("config", "", "YAML configuration file; flags given on the command line win")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	noTags       = flag.Bool("notags", false, "Don't output any tags")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	outputFormat = flag.String("format", "text", "Output format: text, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (same as -format json)")
	finalFEN     = flag.Bool("finalfen", false, "Add the final position to each game")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games reaching an earlier game's final position")
	exactDuplicates    = flag.Bool("exact", false, "With -D, only suppress games with identical moves")

	// Game options
	numGames  = flag.Int("games", 1, "Number of self-play games")
	maxRounds = flag.Int("rounds", 200, "Maximum plies per game (0 = no limit)")
	seed      = flag.Int64("seed", 1, "Seed for the first game; game N uses seed+N")
	whiteKind = flag.String("white", "random", "White player: random, greedy, human")
	blackKind = flag.String("black", "random", "Black player: random, greedy, human")
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard setup)")
	moveList  = flag.String("moves", "", "Replay a move list, e.g. \"1. e4 e5 2. Nf3\"")

	// Analysis
	statusOnly = flag.Bool("status", false, "Classify the -fen position and list its legal moves")

	// Performance
	workers = flag.Int("workers", 0, "Games played concurrently (0 = number of CPUs)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 results, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// flagFilter reports whether a flag should override the configuration.
type flagFilter func(name string) bool

// allFlags applies every flag, defaults included.
func allFlags(string) bool { return true }

// explicitFlags selects only the flags given on the command line.
func explicitFlags() flagFilter {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return func(name string) bool { return set[name] }
}

// applyFlags applies command-line flags to the configuration. Flags
// rejected by use keep the value already in cfg.
func applyFlags(cfg *config.Config, use flagFilter) error {
	if err := applyOutputFlags(cfg, use); err != nil {
		return err
	}
	applyMatchFlags(cfg, use)

	if use("workers") {
		cfg.Workers = *workers
	}
	if use("v") {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config, use flagFilter) error {
	if use("format") {
		format, err := config.ParseOutputFormat(*outputFormat)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if use("notags") {
		cfg.Output.KeepTags = !*noTags
	}
	if use("finalfen") {
		cfg.Output.KeepFinalFEN = *finalFEN
	}
	if use("D") {
		cfg.Output.SuppressDuplicates = *suppressDuplicates
	}
	if use("exact") {
		cfg.Output.ExactDuplicates = *exactDuplicates
	}
	if use("w") && *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	return nil
}

// applyMatchFlags configures the games to play.
func applyMatchFlags(cfg *config.Config, use flagFilter) {
	if use("games") {
		cfg.Match.Games = *numGames
	}
	if use("rounds") {
		cfg.Match.MaxRounds = *maxRounds
	}
	if use("seed") {
		cfg.Match.Seed = *seed
	}
	if use("white") {
		cfg.Match.White = *whiteKind
	}
	if use("black") {
		cfg.Match.Black = *blackKind
	}
	if use("fen") {
		cfg.Match.FEN = *startFEN
	}
	if use("moves") {
		cfg.Match.Moves = *moveList
	}
}
