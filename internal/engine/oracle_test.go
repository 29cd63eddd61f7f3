package engine_test

import (
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// oraclePositions are checked against an independent move generator.
var oraclePositions = []struct {
	name  string
	fen   string
	moves int
}{
	{"initial", engine.InitialFEN, 20},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
	{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 6},
	{"promotion capture", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 44},
	{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", -1},
	{"pinned en passant", "8/8/8/KPp4r/8/8/8/7k w - c6 0 1", -1},
	{"back rank mate", "4k3/8/8/7r/8/8/5PP1/5RKq w - - 0 1", 0},
	{"stalemate", "2k5/8/8/3QB3/8/4K3/8/8 b - - 0 1", 0},
	{"black to move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", -1},
}

func TestMoveCountAgainstOracle(t *testing.T) {
	for _, tt := range oraclePositions {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fenOpt, err := notnil.FEN(tt.fen)
			testutil.AssertNoError(t, err)
			game := notnil.NewGame(fenOpt)
			want := len(game.ValidMoves())

			b, toMove := testutil.MustFEN(t, tt.fen)
			got := 0
			for _, p := range b.OnBoard(toMove) {
				got += len(b.ValidMoves(p))
			}

			testutil.AssertEqual(t, got, want, "legal moves for %v", toMove)
			if tt.moves >= 0 {
				testutil.AssertEqual(t, got, tt.moves)
			}
		})
	}
}

func TestStatusAgainstOracle(t *testing.T) {
	for _, tt := range oraclePositions {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fenOpt, err := notnil.FEN(tt.fen)
			testutil.AssertNoError(t, err)
			game := notnil.NewGame(fenOpt)

			want := engine.StatusNone
			switch game.Position().Status() {
			case notnil.Checkmate:
				want = engine.StatusCheckmate
			case notnil.Stalemate:
				want = engine.StatusStalemate
			}

			b, toMove := testutil.MustFEN(t, tt.fen)
			got := b.KingStatus(toMove)
			if got == engine.StatusCheck {
				got = engine.StatusNone
			}
			testutil.AssertEqual(t, got, want)
		})
	}
}
