package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// UnderAttack reports whether any on-board piece opposing defender
// threatens pos. Attack sets are not legality filtered.
func (b *Board) UnderAttack(pos chess.Position, defender chess.Colour) bool {
	for _, p := range b.rosters[defender.Opposite()] {
		from, ok := b.Position(p)
		if !ok {
			continue
		}
		for _, target := range movers[p.Kind].attacks(b, p, from) {
			if target == pos {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether colour's king is attacked. A board without that
// king is never in check.
func (b *Board) InCheck(colour chess.Colour) bool {
	king := b.King(colour)
	if king == nil {
		return false
	}
	pos, _ := b.Position(king)
	return b.UnderAttack(pos, colour)
}

// IsValidMove reports whether piece may play move without leaving its own
// king attacked. The board is unchanged afterwards.
func (b *Board) IsValidMove(piece *ChessPiece, move Move) bool {
	if !b.IsOnBoard(piece) {
		return false
	}
	if piece.IsTeammate(b.LookAt(move.To).Piece) {
		return false
	}
	attacked := b.probe(piece, move, func() bool {
		return b.InCheck(piece.Colour)
	})
	return !attacked
}

// placement is a saved position; the zero Position means off the board.
type placement struct {
	piece *ChessPiece
	pos   chess.Position
}

// probe plays move speculatively, evaluates inspect and restores every
// touched piece before returning, including when inspect panics.
func (b *Board) probe(piece *ChessPiece, move Move, inspect func() bool) bool {
	saved := b.touched(piece, move)
	defer b.restore(saved)

	b.simulate(piece, move)
	return inspect()
}

// touched lists the pieces move can displace, with their current squares.
func (b *Board) touched(piece *ChessPiece, move Move) []placement {
	saved := []placement{b.placementOf(piece)}
	if victim := b.LookAt(move.To).Piece; victim != nil && victim != piece {
		saved = append(saved, b.placementOf(victim))
	}
	switch move.Class {
	case EnPassantMove:
		if victim := b.pieces[move.Captured]; victim != nil {
			saved = append(saved, b.placementOf(victim))
		}
	case CastlingMove:
		if rook := b.pieces[move.Rook]; rook != nil {
			saved = append(saved, b.placementOf(rook))
		}
		if other := b.LookAt(rookTarget(move)).Piece; other != nil {
			saved = append(saved, b.placementOf(other))
		}
	}
	return saved
}

func (b *Board) placementOf(piece *ChessPiece) placement {
	pos, _ := b.Position(piece)
	return placement{piece: piece, pos: pos}
}

// simulate moves pieces without touching pristine flags, rosters or the
// last-move record.
func (b *Board) simulate(piece *ChessPiece, move Move) {
	switch move.Class {
	case EnPassantMove:
		if victim := b.pieces[move.Captured]; victim != nil {
			b.place(victim, chess.Position{})
		}
		b.Replace(piece, move.To)
	case CastlingMove:
		b.Replace(piece, move.To)
		if rook := b.pieces[move.Rook]; rook != nil {
			b.Replace(rook, rookTarget(move))
		}
	default:
		b.Replace(piece, move.To)
	}
}

// restore lifts every saved piece and puts each back where it was.
func (b *Board) restore(saved []placement) {
	for _, s := range saved {
		b.place(s.piece, chess.Position{})
	}
	for _, s := range saved {
		if s.pos.IsValid() {
			b.place(s.piece, s.pos)
		}
	}
}
