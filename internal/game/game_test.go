package game_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/player"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func scripted(moves string, first chess.Colour) (white, black *player.Scripted) {
	w, b := player.Split(strings.Fields(moves), first)
	return player.NewScripted("white", w), player.NewScripted("black", b)
}

func TestFoolsMate(t *testing.T) {
	white, black := scripted("1. f3 e5 2. g4 Qh4", chess.White)
	rec, err := game.NewStandard(white, black).Play(context.Background())
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, rec.Moves, []string{"f3", "e5", "g4", "Qh4#"})
	testutil.AssertEqual(t, rec.Outcome, game.BlackWins)
	testutil.AssertEqual(t, rec.Result, "0-1")
	testutil.AssertEqual(t, rec.Reason, game.ReasonCheckmate)
	testutil.AssertEqual(t, rec.Transcript(), "1. f3 e5 2. g4 Qh4#")
	testutil.AssertEqual(t, rec.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, rec.FinalFEN, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
}

func TestGameEndings(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   string
		rounds  int
		outcome game.Outcome
		reason  string
		plies   int
	}{
		{
			name:    "stalemate before any move",
			fen:     "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			outcome: game.Draw,
			reason:  game.ReasonStalemate,
		},
		{
			name:    "checkmate before any move",
			fen:     "4k3/8/8/7r/8/8/5PP1/5RKq w - - 0 1",
			outcome: game.BlackWins,
			reason:  game.ReasonCheckmate,
		},
		{
			name:    "resignation",
			fen:     engine.InitialFEN,
			moves:   "e4 e5 resign",
			outcome: game.BlackWins,
			reason:  game.ReasonResigned,
			plies:   2,
		},
		{
			name:    "script runs out",
			fen:     engine.InitialFEN,
			moves:   "e4 e5 Nf3",
			outcome: game.Unfinished,
			reason:  game.ReasonScriptEnd,
			plies:   3,
		},
		{
			name:    "round limit",
			fen:     engine.InitialFEN,
			moves:   "e4 e5 Nf3 Nc6",
			rounds:  2,
			outcome: game.Unfinished,
			reason:  game.ReasonRoundLimit,
			plies:   2,
		},
		{
			name:    "mate on the last round",
			fen:     engine.InitialFEN,
			moves:   "f3 e5 g4 Qh4",
			rounds:  4,
			outcome: game.BlackWins,
			reason:  game.ReasonCheckmate,
			plies:   4,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, toMove := testutil.MustFEN(t, tt.fen)
			white, black := scripted(tt.moves, toMove)

			g := game.New(b, white, black, game.WithToMove(toMove), game.WithMaxRounds(tt.rounds))
			rec, err := g.Play(context.Background())
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rec.Outcome, tt.outcome)
			testutil.AssertEqual(t, rec.Reason, tt.reason)
			testutil.AssertEqual(t, rec.Plies(), tt.plies)
		})
	}
}

func TestIllegalScriptedMove(t *testing.T) {
	white, black := scripted("e4 e5 Ke3", chess.White)
	rec, err := game.NewStandard(white, black).Play(context.Background())

	testutil.AssertErrorIs(t, err, errors.ErrNotation)
	testutil.AssertTrue(t, strings.Contains(err.Error(), "white (White)"), err.Error())
	testutil.AssertEqual(t, rec.Moves, []string{"e4", "e5"})
}

// thief tries to move the opponent's king.
type thief struct{}

func (thief) Name() string { return "thief" }

func (thief) MakeMove(_ context.Context, b *engine.Board, colour chess.Colour, _ []*engine.ChessPiece) (game.Action, error) {
	king := b.King(colour.Opposite())
	return game.Play(king, b.ValidMoves(king)[0]), nil
}

func TestWrongColour(t *testing.T) {
	b := testutil.MustSetup(t, []string{"Ke1"}, []string{"Ke8"})
	_, err := game.New(b, thief{}, thief{}).Play(context.Background())
	testutil.AssertErrorIs(t, err, errors.ErrWrongColour)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := game.NewStandard(player.NewRandom("a", 1), player.NewRandom("b", 2))
	rec, err := g.Play(ctx)
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertEqual(t, rec.Plies(), 0)
}

func TestTranscriptBlackFirst(t *testing.T) {
	rec := &game.Record{
		StartFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		Moves:    []string{"e5", "Nf3", "Nc6"},
	}
	testutil.AssertEqual(t, rec.Transcript(), "1... e5 2. Nf3 Nc6")
}

// Random self-play games replayed from their own transcripts must reach
// the same final position.
func TestSelfPlayReplays(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		white := player.NewRandom("random", seed)
		black := player.NewGreedy("greedy", seed+100)
		rec, err := game.NewStandard(white, black, game.WithMaxRounds(120)).Play(context.Background())
		testutil.AssertNoError(t, err)

		w, b := player.Split(rec.Moves, chess.White)
		replay, err := game.NewStandard(player.NewScripted("w", w), player.NewScripted("b", b)).
			Play(context.Background())
		testutil.AssertNoError(t, err, "seed %d transcript %s", seed, rec.Transcript())
		testutil.AssertEqual(t, replay.Moves, rec.Moves, "seed %d", seed)
		testutil.AssertEqual(t, replay.FinalFEN, rec.FinalFEN, "seed %d", seed)
	}
}

func TestLogDrawsBoardAtVerbosityTwo(t *testing.T) {
	var log bytes.Buffer
	white, black := scripted("f3 e5 g4 Qh4", chess.White)
	_, err := game.NewStandard(white, black, game.WithLog(&log, 2)).Play(context.Background())
	testutil.AssertNoError(t, err)

	// The starting position plus one diagram per move.
	testutil.AssertEqual(t, strings.Count(log.String(), "  a b c d e f g h\n"), 5)
	testutil.AssertTrue(t, strings.HasPrefix(log.String(), notation.DrawBoard(engine.NewInitialBoard())),
		"log does not start with the initial board:\n%s", log.String())
	testutil.AssertTrue(t, strings.Contains(log.String(), "4 . . . . . . P q\n"), "mating position not drawn")

	log.Reset()
	white, black = scripted("f3 e5 g4 Qh4", chess.White)
	_, err = game.NewStandard(white, black, game.WithLog(&log, 1)).Play(context.Background())
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, strings.Contains(log.String(), "a b c d"), "board drawn at verbosity 1")
}

func TestBoardDiagnosticsFollowVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		wantLog   bool
	}{
		{0, false},
		{1, true},
		{2, true},
	}

	for _, tt := range tests {
		var log bytes.Buffer
		b := testutil.MustSetup(t, []string{"Ra1"}, []string{"Ke8"})
		g := game.New(b, player.NewRandom("w", 1), player.NewRandom("b", 2), game.WithLog(&log, tt.verbosity))
		g.Board().KingStatus(chess.White)
		testutil.AssertEqual(t, strings.Contains(log.String(), "no White king"), tt.wantLog,
			"verbosity %d: log = %q", tt.verbosity, log.String())
	}
}
