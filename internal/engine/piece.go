package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ChessPiece is a piece record owned by a Board. Its position is not
// stored here; ask the Board.
type ChessPiece struct {
	// Opaque identity, stable across Clone.
	ID uuid.UUID

	Kind   chess.Piece
	Colour chess.Colour

	// Pristine is true until the piece makes its first move. It drives
	// the pawn double step and castling eligibility.
	Pristine bool

	// Home is the square the piece was created on, zero if it was
	// created off the board.
	Home chess.Position
}

// NewPiece creates a pristine piece. home may be the zero Position.
func NewPiece(kind chess.Piece, colour chess.Colour, home chess.Position) *ChessPiece {
	return &ChessPiece{
		ID:       uuid.New(),
		Kind:     kind,
		Colour:   colour,
		Pristine: true,
		Home:     home,
	}
}

// String returns e.g. "White Rook".
func (p *ChessPiece) String() string {
	if p == nil {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Notation returns the SAN letter of the piece, empty for pawns.
func (p *ChessPiece) Notation() string {
	return p.Kind.Letter()
}

// IsTeammate reports whether other is a piece of the same colour.
func (p *ChessPiece) IsTeammate(other *ChessPiece) bool {
	return other != nil && other.Colour == p.Colour
}

// IsOpponent reports whether other is a piece of the opposite colour.
func (p *ChessPiece) IsOpponent(other *ChessPiece) bool {
	return other != nil && other.Colour != p.Colour
}
