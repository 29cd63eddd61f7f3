// chess-rules plays, replays and classifies chess games under the full rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	use := allFlags
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *configFile, err)
			os.Exit(2)
		}
		use = explicitFlags()
	}
	if err := applyFlags(cfg, use); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := run(ctx, cfg, os.Stdin, promptWriter(os.Stdin, os.Stdout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run executes the configured mode and returns the number of failed games.
func run(ctx context.Context, cfg *config.Config, in io.Reader, prompt io.Writer) (int, error) {
	if *statusOnly {
		return 0, classifyPosition(cfg, cfg.OutputFile)
	}

	pc := newProcessingContext(cfg, in, prompt)
	results := pc.playAll(ctx)

	failed, err := pc.writeResults(results, output.NewWriter(cfg.OutputFile, cfg))
	if err != nil {
		return failed, err
	}
	if cfg.Verbosity > 0 {
		reportStatistics(pc.log, results)
		if pc.detector != nil {
			fmt.Fprintf(pc.log, "%d duplicate game(s) suppressed, %d unique\n",
				pc.detector.DuplicateCount(), pc.detector.UniqueCount())
		}
	}
	return failed, nil
}

// promptWriter returns where human players are prompted. Moves piped in
// from a file get no prompts.
func promptWriter(in *os.File, out io.Writer) io.Writer {
	fd := in.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return out
	}
	return io.Discard
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games between built-in players and checks every move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -games 100 -white greedy -J          self-play, JSON records\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -moves \"1. f3 e5 2. g4 Qh4\"          replay a move list\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -status -fen \"<fen>\"                 classify a position\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -white human -black greedy           play against the computer\n")
}
