package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveClass tags the variant a Move carries.
type MoveClass int

const (
	NormalMove MoveClass = iota
	PromotionMove
	CastlingMove
	EnPassantMove
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case NormalMove:
		return "Normal"
	case PromotionMove:
		return "Promotion"
	case CastlingMove:
		return "Castling"
	case EnPassantMove:
		return "En passant"
	default:
		return "Unknown"
	}
}

// CastlingSide distinguishes kingside from queenside castling.
type CastlingSide int

const (
	NoCastle CastlingSide = iota
	ShortCastle
	LongCastle
)

// Move is a candidate or applied move of a single piece.
//
// Which fields are meaningful depends on Class:
//   - NormalMove: From, To. A victim on To is resolved when applied.
//   - PromotionMove: From, To, Promotion.
//   - CastlingMove: From, To (the king's destination), Side, Rook.
//   - EnPassantMove: From, To, Captured (the pawn beside From).
type Move struct {
	Class     MoveClass
	From      chess.Position
	To        chess.Position
	Promotion chess.Piece
	Side      CastlingSide
	Rook      uuid.UUID
	Captured  uuid.UUID
}

// NewMove returns a normal move.
func NewMove(from, to chess.Position) Move {
	return Move{Class: NormalMove, From: from, To: to}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PromotionMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == CastlingMove
}

// IsEnPassant returns true if this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantMove
}

// Matches reports whether m and other describe the same move, ignoring
// the piece references that are only known once generated.
func (m Move) Matches(other Move) bool {
	if m.Class != other.Class || m.To != other.To {
		return false
	}
	switch m.Class {
	case PromotionMove:
		return m.Promotion == other.Promotion
	case CastlingMove:
		return m.Side == other.Side
	}
	return true
}

// String returns a long-algebraic style description, e.g. "E2-E4".
func (m Move) String() string {
	switch m.Class {
	case PromotionMove:
		return fmt.Sprintf("%v-%v=%s", m.From, m.To, m.Promotion.Letter())
	case CastlingMove:
		if m.Side == ShortCastle {
			return "0-0"
		}
		return "0-0-0"
	case EnPassantMove:
		return fmt.Sprintf("%vx%v e.p.", m.From, m.To)
	default:
		return fmt.Sprintf("%v-%v", m.From, m.To)
	}
}

// LastMove records the most recent real move, for en passant eligibility.
type LastMove struct {
	Piece       uuid.UUID
	Move        Move
	WasPristine bool
}

// IsDoubleStep reports whether the recorded move was a pawn's first move
// advancing two ranks.
func (l *LastMove) IsDoubleStep() bool {
	if l == nil || l.Move.Class != NormalMove || !l.WasPristine {
		return false
	}
	d := int(l.Move.To.Rank) - int(l.Move.From.Rank)
	return l.Move.From.Col == l.Move.To.Col && (d == 2 || d == -2)
}
