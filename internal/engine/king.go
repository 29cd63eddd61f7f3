package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// kingMover steps one square in any direction and castles.
type kingMover struct{}

func (kingMover) moves(_ *Board, _ *ChessPiece, from chess.Position) []chess.Position {
	var out []chess.Position
	for _, dir := range chess.AllDirections() {
		if to, ok := dir(from); ok {
			out = append(out, to)
		}
	}
	return out
}

func (k kingMover) attacks(b *Board, p *ChessPiece, from chess.Position) []chess.Position {
	return k.moves(b, p, from)
}

// castlingFiles gives the rook's starting file and the king's and rook's
// destination files for each side.
var castlingFiles = map[CastlingSide]struct{ rook, kingTo, rookTo chess.Col }{
	ShortCastle: {rook: 'h', kingTo: 'g', rookTo: 'f'},
	LongCastle:  {rook: 'a', kingTo: 'c', rookTo: 'd'},
}

// rookTarget returns where the rook lands for a castling move.
func rookTarget(m Move) chess.Position {
	return chess.NewPosition(castlingFiles[m.Side].rookTo, m.To.Rank)
}

func (kingMover) specialMoves(b *Board, king *ChessPiece, from chess.Position, skipLegality bool) []Move {
	home := king.Colour.HomeRank()
	if !king.Pristine || from.Rank != home {
		return nil
	}

	var out []Move
	for _, side := range []CastlingSide{ShortCastle, LongCastle} {
		files := castlingFiles[side]
		rook := b.LookAt(chess.NewPosition(files.rook, home)).Piece
		if rook == nil || rook.Kind != chess.Rook || !king.IsTeammate(rook) || !rook.Pristine {
			continue
		}
		if !b.emptyBetween(from.Col, files.rook, home) {
			continue
		}
		to := chess.NewPosition(files.kingTo, home)
		if occupant := b.LookAt(to).Piece; occupant != nil && occupant != king {
			continue
		}
		if !skipLegality && b.pathAttacked(from.Col, files.kingTo, home, king.Colour) {
			continue
		}
		out = append(out, Move{Class: CastlingMove, From: from, To: to, Side: side, Rook: rook.ID})
	}
	return out
}

// emptyBetween reports whether every square strictly between files a and b
// on rank is empty.
func (b *Board) emptyBetween(a, c chess.Col, rank chess.Rank) bool {
	lo, hi := a, c
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if !b.LookAt(chess.NewPosition(col, rank)).IsEmpty() {
			return false
		}
	}
	return true
}

// pathAttacked reports whether any square the king crosses, origin and
// destination included, is attacked.
func (b *Board) pathAttacked(from, to chess.Col, rank chess.Rank, colour chess.Colour) bool {
	step := 1
	if to < from {
		step = -1
	}
	for col := int(from); ; col += step {
		if b.UnderAttack(chess.NewPosition(chess.Col(col), rank), colour) {
			return true
		}
		if chess.Col(col) == to {
			return false
		}
	}
}

// castle moves a rook beside the castling king. It bypasses capture
// handling and fails if the destination is occupied.
func (b *Board) castle(rook *ChessPiece, to chess.Position) error {
	if occupant := b.LookAt(to).Piece; occupant != nil && occupant != rook {
		return &errors.MoveError{Err: errors.ErrOccupiedSquare, Piece: rook.String(), To: to.String()}
	}
	b.place(rook, to)
	rook.Pristine = false
	return nil
}
