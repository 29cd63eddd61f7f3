package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status classifies a colour's king.
type Status int

const (
	StatusNone Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// IsTerminal reports whether the game is over for the classified colour.
func (s Status) IsTerminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// KingStatus classifies colour's position from the current board. It is
// recomputed on every call. A missing king yields StatusNone.
func (b *Board) KingStatus(colour chess.Colour) Status {
	king := b.King(colour)
	if king == nil {
		b.logf("no %v king on board; status defaults to none", colour)
		return StatusNone
	}
	pos, _ := b.Position(king)
	attacked := b.UnderAttack(pos, colour)
	canMove := b.HasLegalMoves(colour)

	switch {
	case attacked && !canMove:
		return StatusCheckmate
	case attacked:
		return StatusCheck
	case !canMove:
		return StatusStalemate
	default:
		return StatusNone
	}
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (b *Board) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range b.OnBoard(colour) {
		if len(b.ValidMoves(p)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is checkmated.
func (b *Board) IsCheckmate(colour chess.Colour) bool {
	return b.KingStatus(colour) == StatusCheckmate
}

// IsStalemate returns true if colour is stalemated.
func (b *Board) IsStalemate(colour chess.Colour) bool {
	return b.KingStatus(colour) == StatusStalemate
}
