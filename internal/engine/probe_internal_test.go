package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func occupancy(b *Board) map[chess.Position]*ChessPiece {
	out := make(map[chess.Position]*ChessPiece)
	for _, pos := range chess.AllPositions() {
		if p := b.LookAt(pos).Piece; p != nil {
			out[pos] = p
		}
	}
	return out
}

func TestProbeRestoresAfterPanic(t *testing.T) {
	b, _, err := NewBoardFromFEN("r3k2r/8/8/8/1pP5/8/8/R3K2R b KQkq c3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	before := occupancy(b)

	pawn := b.LookAt(chess.MustParsePosition("b4")).Piece
	king := b.King(chess.Black)
	var moves []Move
	moves = append(moves, b.PseudoLegalMoves(pawn)...)
	moves = append(moves, b.PseudoLegalMoves(king)...)

	for _, mv := range moves {
		piece := pawn
		if mv.From == chess.MustParsePosition("e8") {
			piece = king
		}
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: inspect did not panic", mv)
				}
			}()
			b.probe(piece, mv, func() bool { panic("inspect") })
		}()

		if diff := cmp.Diff(before, occupancy(b)); diff != "" {
			t.Errorf("%v: board changed (-want +got):\n%s", mv, diff)
		}
	}
}

func TestProbeSeesSimulatedBoard(t *testing.T) {
	b, _, err := NewBoardFromFEN("4k3/8/8/8/1pP5/8/8/4K3 b - c3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pawn := b.LookAt(chess.MustParsePosition("b4")).Piece
	victim := b.LookAt(chess.MustParsePosition("c4")).Piece

	var ep Move
	for _, mv := range b.ValidMoves(pawn) {
		if mv.IsEnPassant() {
			ep = mv
		}
	}
	if !ep.IsEnPassant() {
		t.Fatal("expected an en passant capture")
	}

	b.probe(pawn, ep, func() bool {
		if b.IsOnBoard(victim) {
			t.Error("victim should be lifted during the probe")
		}
		if got := b.LookAt(chess.MustParsePosition("c3")).Piece; got != pawn {
			t.Errorf("c3 = %v; want the capturing pawn", got)
		}
		return false
	})
	if !b.IsOnBoard(victim) {
		t.Error("victim should be restored")
	}
}
