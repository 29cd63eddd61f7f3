package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustSetup builds a board from setup tokens or fails the test.
func MustSetup(t *testing.T, white, black []string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromSetup(white, black)
	if err != nil {
		t.Fatalf("setup white=%v black=%v: %v", white, black, err)
	}
	return b
}

// MustFEN builds a board from a FEN string or fails the test.
func MustFEN(t *testing.T, fen string) (*engine.Board, chess.Colour) {
	t.Helper()
	b, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("FEN %q: %v", fen, err)
	}
	return b, toMove
}

// MustPieceAt returns the piece on square or fails the test.
func MustPieceAt(t *testing.T, b *engine.Board, square string) *engine.ChessPiece {
	t.Helper()
	pos, ok := chess.ParsePosition(square)
	if !ok {
		t.Fatalf("bad square %q", square)
	}
	p := b.LookAt(pos).Piece
	if p == nil {
		t.Fatalf("no piece on %s", square)
	}
	return p
}

// Destinations returns the sorted "E4"-style targets of moves.
func Destinations(moves []engine.Move) []string {
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.To.String())
	}
	sort.Strings(out)
	return out
}

// AssertDestinations compares the destinations of moves with want,
// ignoring order.
func AssertDestinations(t *testing.T, moves []engine.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	AssertSameStrings(t, Destinations(moves), want, msgAndArgs...)
}

// SnapshotBoard returns every occupied square mapped to "<colour> <kind>"
// plus the pristine flag, for comparing boards before and after a probe.
func SnapshotBoard(b *engine.Board) map[string]string {
	out := make(map[string]string)
	for _, pos := range chess.AllPositions() {
		p := b.LookAt(pos).Piece
		if p == nil {
			continue
		}
		desc := p.String()
		if p.Pristine {
			desc += " pristine"
		}
		out[pos.String()] = desc
	}
	return out
}
