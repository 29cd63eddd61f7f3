// processor.go - Game setup and parallel self-play
package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/player"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// ProcessingContext holds the shared state for one run.
type ProcessingContext struct {
	cfg    *config.Config
	in     io.Reader // human moves
	prompt io.Writer // human prompts
	log    io.Writer

	detector *hashing.DuplicateDetector // nil unless -D; used only by writeResults
}

// newProcessingContext wraps the log so concurrent games can share it.
func newProcessingContext(cfg *config.Config, in io.Reader, prompt io.Writer) *ProcessingContext {
	pc := &ProcessingContext{
		cfg:    cfg,
		in:     in,
		prompt: prompt,
		log:    &lockedWriter{w: cfg.LogFile},
	}
	if cfg.Output.SuppressDuplicates {
		pc.detector = hashing.NewDuplicateDetector(cfg.Output.ExactDuplicates)
	}
	return pc
}

// lockedWriter serialises writes from concurrent games.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// newBoard returns the starting board and the side to move.
func newBoard(cfg *config.Config) (*engine.Board, chess.Colour, error) {
	if cfg.Match.FEN == "" {
		return engine.NewInitialBoard(), chess.White, nil
	}
	return engine.NewBoardFromFEN(cfg.Match.FEN)
}

// hasHuman reports whether either side reads moves from the terminal.
func hasHuman(cfg *config.Config) bool {
	return cfg.Match.White == player.KindHuman || cfg.Match.Black == player.KindHuman
}

// numWorkers picks the pool size. Human games share one input, so they
// are played one at a time.
func numWorkers(cfg *config.Config) int {
	if hasHuman(cfg) {
		return 1
	}
	n := cfg.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > cfg.Match.Games {
		n = cfg.Match.Games
	}
	return n
}

// newPlayers builds both players for the game seeded with seed.
func (pc *ProcessingContext) newPlayers(seed int64) (game.Player, game.Player, error) {
	white, err := player.New(pc.cfg.Match.White, pc.cfg.Match.White, seed, pc.in, pc.prompt)
	if err != nil {
		return nil, nil, err
	}
	black, err := player.New(pc.cfg.Match.Black, pc.cfg.Match.Black, seed+1, pc.in, pc.prompt)
	if err != nil {
		return nil, nil, err
	}
	return white, black, nil
}

// playGame plays one self-play game on a board of its own.
func (pc *ProcessingContext) playGame(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index}

	board, toMove, err := newBoard(pc.cfg)
	if err != nil {
		result.Error = err
		return result
	}
	white, black, err := pc.newPlayers(item.Seed)
	if err != nil {
		result.Error = err
		return result
	}

	g := game.New(board, white, black,
		game.WithToMove(toMove),
		game.WithIndex(item.Index),
		game.WithMaxRounds(pc.cfg.Match.MaxRounds),
		game.WithLog(pc.log, pc.cfg.Verbosity))
	result.Record, result.Error = g.Play(ctx)
	return result
}

// replayMoves plays the scripted move list as a single game.
func (pc *ProcessingContext) replayMoves(ctx context.Context) worker.ProcessResult {
	result := worker.ProcessResult{}

	board, toMove, err := newBoard(pc.cfg)
	if err != nil {
		result.Error = err
		return result
	}
	whiteMoves, blackMoves := player.Split(strings.Fields(pc.cfg.Match.Moves), toMove)

	g := game.New(board,
		player.NewScripted("white", whiteMoves),
		player.NewScripted("black", blackMoves),
		game.WithToMove(toMove),
		game.WithMaxRounds(pc.cfg.Match.MaxRounds),
		game.WithLog(pc.log, pc.cfg.Verbosity))
	result.Record, result.Error = g.Play(ctx)
	return result
}

// playAll plays every configured game and returns the results in order.
func (pc *ProcessingContext) playAll(ctx context.Context) []worker.ProcessResult {
	if pc.cfg.Match.Scripted() {
		return []worker.ProcessResult{pc.replayMoves(ctx)}
	}

	items := make([]worker.WorkItem, pc.cfg.Match.Games)
	for i := range items {
		items[i] = worker.WorkItem{Index: i, Seed: pc.cfg.Match.Seed + int64(i)}
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return pc.playGame(ctx, item)
	}
	return worker.RunAll(ctx, items, processFunc,
		worker.WithWorkers(numWorkers(pc.cfg)),
		worker.WithBufferSize(len(items)))
}

// writeResults writes every record and reports failed games on the log.
// It returns the number of games that ended in an error.
func (pc *ProcessingContext) writeResults(results []worker.ProcessResult, w output.GameWriter) (int, error) {
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(pc.log, "game %d: %v\n", r.Index+1, r.Error)
		}
		if r.Record == nil || pc.isDuplicate(r.Record) {
			continue
		}
		if err := w.WriteRecord(r.Record); err != nil {
			return failed, err
		}
	}
	return failed, w.Close()
}

// isDuplicate reports whether rec repeats an earlier game. Records whose
// final position cannot be hashed are kept.
func (pc *ProcessingContext) isDuplicate(rec *game.Record) bool {
	if pc.detector == nil {
		return false
	}
	dup, err := pc.detector.CheckAndAdd(rec)
	if err != nil {
		fmt.Fprintf(pc.log, "game %d: cannot hash final position: %v\n", rec.Index+1, err)
		return false
	}
	return dup
}

// reportStatistics logs a summary of results.
func reportStatistics(log io.Writer, results []worker.ProcessResult) {
	counts := make(map[string]int)
	for _, r := range results {
		if r.Record != nil {
			counts[r.Record.Result]++
		}
	}
	fmt.Fprintf(log, "%d game(s): %d white wins, %d black wins, %d drawn, %d unfinished\n",
		len(results),
		counts[game.WhiteWins.String()],
		counts[game.BlackWins.String()],
		counts[game.Draw.String()],
		counts[game.Unfinished.String()])
}
