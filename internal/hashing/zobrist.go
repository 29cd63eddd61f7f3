package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const squares = chess.BoardSize * chess.BoardSize

// Zobrist keys, fixed so hashes are stable between runs.
var (
	pieceKeys    [chess.NumColours][chess.NumPieceValues][squares]uint64
	pristineKeys [chess.NumColours][squares]uint64
	epKeys       [chess.BoardSize]uint64
	blackToMove  uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5eed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for s := range pieceKeys[c][k] {
				pieceKeys[c][k][s] = rng.Uint64()
			}
		}
		for s := range pristineKeys[c] {
			pristineKeys[c][s] = rng.Uint64()
		}
	}
	for i := range epKeys {
		epKeys[i] = rng.Uint64()
	}
	blackToMove = rng.Uint64()
}

func squareIndex(pos chess.Position) int {
	return int(pos.Col-chess.FirstCol)*chess.BoardSize + int(pos.Rank-chess.FirstRank)
}

// PositionHash returns the Zobrist hash of b with toMove to play. Pristine
// kings and rooks are hashed separately, so castling rights count; so does
// an en passant chance created by the last move.
func PositionHash(b *engine.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.OnBoard(colour) {
			pos, _ := b.Position(p)
			sq := squareIndex(pos)
			hash ^= pieceKeys[colour][p.Kind][sq]
			if p.Pristine && (p.Kind == chess.King || p.Kind == chess.Rook) {
				hash ^= pristineKeys[colour][sq]
			}
		}
	}
	if last := b.LastMove(); last.IsDoubleStep() {
		hash ^= epKeys[last.Move.To.Col-chess.FirstCol]
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// FENHash hashes the position described by fen.
func FENHash(fen string) (uint64, error) {
	b, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return 0, err
	}
	return PositionHash(b, toMove), nil
}

// MoveSequenceHash hashes the move texts of a game in order.
func MoveSequenceHash(moves []string) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, text := range moves {
		for _, c := range text {
			hash = hash*multiplier + uint64(c)
		}
		// Separator, so "e4 e5" and "e4e 5" differ.
		hash = hash*multiplier + ' '
	}
	return hash
}
