package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestRunStatus(t *testing.T) {
	defer saveRestoreBool(statusOnly, true)()

	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithFEN("5k2/8/8/8/8/8/8/4K2R w K - 0 1").
		WithOutput(out).
		Build()

	failed, err := run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)
	testutil.AssertTrue(t, strings.Contains(out.String(), "0-0+"), "output was %q", out.String())
}

func TestRunReplay(t *testing.T) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithMoves("1. f3 e5 2. g4 Qh4").
		WithOutput(out).
		WithLog(log).
		Build()

	failed, err := run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)
	testutil.AssertTrue(t, strings.Contains(out.String(), "1. f3 e5 2. g4 Qh4# 0-1"), "output was %q", out.String())
	testutil.AssertTrue(t, strings.Contains(out.String(), `[Termination "checkmate"]`), "output was %q", out.String())
	testutil.AssertTrue(t, strings.Contains(log.String(), "1 game(s): 0 white wins, 1 black wins"), "log was %q", log.String())
}

func TestRunReplayFailure(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithMoves("1. e4 e4").
		WithOutput(out).
		WithLog(&bytes.Buffer{}).
		WithVerbosity(0).
		Build()

	failed, err := run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 1)
	testutil.AssertTrue(t, strings.Contains(out.String(), "1. e4 *"), "output was %q", out.String())
}

func TestRunReportsDuplicates(t *testing.T) {
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3").
		WithGames(4).
		WithWorkers(4).
		WithDuplicateSuppression(true, false).
		WithOutput(&bytes.Buffer{}).
		WithLog(log).
		Build()

	failed, err := run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)
	testutil.AssertTrue(t, strings.Contains(log.String(), "3 duplicate game(s) suppressed, 1 unique"), "log was %q", log.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithGames(3).
		WithOutput(&bytes.Buffer{}).
		WithLog(log).
		Build()

	failed, err := run(ctx, cfg, strings.NewReader(""), &bytes.Buffer{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 3)
	testutil.AssertEqual(t, strings.Count(log.String(), "context canceled"), 3, "log was %q", log.String())
}

func TestPromptWriterNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "moves")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if w := promptWriter(f, &bytes.Buffer{}); w != io.Discard {
		t.Errorf("promptWriter() for a regular file = %T, want io.Discard", w)
	}
}
