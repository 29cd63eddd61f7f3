// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is the content of one board square: a piece or nothing.
type Square struct {
	Piece *ChessPiece
}

// IsEmpty reports whether no piece occupies the square.
func (s Square) IsEmpty() bool {
	return s.Piece == nil
}

// Board owns the grid, the piece records and their positions.
//
// The grid and the position map always agree; both are changed only by
// place. A Board is not safe for concurrent use: IsValidMove mutates it
// while probing. Use Clone to probe from several goroutines.
type Board struct {
	// squares[col][rank], both 0-7.
	squares [chess.BoardSize][chess.BoardSize]*ChessPiece

	pieces    map[uuid.UUID]*ChessPiece
	positions map[uuid.UUID]chess.Position

	// Every piece ever added, per colour, in creation order.
	rosters [chess.NumColours][]*ChessPiece

	// Set only by ApplyMove.
	lastMove *LastMove

	log io.Writer
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		pieces:    make(map[uuid.UUID]*ChessPiece),
		positions: make(map[uuid.UUID]chess.Position),
		log:       io.Discard,
	}
}

// SetLog directs diagnostics to w. A nil writer discards them.
func (b *Board) SetLog(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	b.log = w
}

func (b *Board) logf(format string, args ...interface{}) {
	fmt.Fprintf(b.log, format+"\n", args...)
}

// LookAt returns the content of pos. Off-board positions are empty.
func (b *Board) LookAt(pos chess.Position) Square {
	if !pos.IsValid() {
		return Square{}
	}
	return Square{Piece: b.squares[chess.ColIndex(pos.Col)][chess.RankIndex(pos.Rank)]}
}

// Position returns the square piece stands on, false if it is off the board.
func (b *Board) Position(piece *ChessPiece) (chess.Position, bool) {
	if piece == nil {
		return chess.Position{}, false
	}
	pos, ok := b.positions[piece.ID]
	return pos, ok
}

// PositionOf is like Position but reports a captured piece as ErrOffBoard.
func (b *Board) PositionOf(piece *ChessPiece) (chess.Position, error) {
	pos, ok := b.Position(piece)
	if !ok {
		return chess.Position{}, &errors.MoveError{Err: errors.ErrOffBoard, Piece: piece.String()}
	}
	return pos, nil
}

// IsOnBoard reports whether piece currently stands on a square.
func (b *Board) IsOnBoard(piece *ChessPiece) bool {
	_, ok := b.Position(piece)
	return ok
}

// Piece returns the piece record with the given id, or nil.
func (b *Board) Piece(id uuid.UUID) *ChessPiece {
	return b.pieces[id]
}

// Pieces returns every piece of colour ever added, in creation order.
func (b *Board) Pieces(colour chess.Colour) []*ChessPiece {
	out := make([]*ChessPiece, len(b.rosters[colour]))
	copy(out, b.rosters[colour])
	return out
}

// OnBoard returns the pieces of colour that are still on the board.
func (b *Board) OnBoard(colour chess.Colour) []*ChessPiece {
	var out []*ChessPiece
	for _, p := range b.rosters[colour] {
		if b.IsOnBoard(p) {
			out = append(out, p)
		}
	}
	return out
}

// OffBoard returns the captured pieces of colour.
func (b *Board) OffBoard(colour chess.Colour) []*ChessPiece {
	var out []*ChessPiece
	for _, p := range b.rosters[colour] {
		if !b.IsOnBoard(p) {
			out = append(out, p)
		}
	}
	return out
}

// King returns the first king of colour on the board, or nil.
func (b *Board) King(colour chess.Colour) *ChessPiece {
	for _, p := range b.rosters[colour] {
		if p.Kind == chess.King && b.IsOnBoard(p) {
			return p
		}
	}
	return nil
}

// LastMove returns the most recent applied move, or nil.
func (b *Board) LastMove() *LastMove {
	return b.lastMove
}

// Add places piece on pos and records it in its colour's roster.
// It is meant for setup and fails if pos is occupied.
func (b *Board) Add(piece *ChessPiece, pos chess.Position) error {
	if !pos.IsValid() {
		return &errors.MoveError{Err: errors.ErrInvalidSetup, Piece: piece.String(), To: pos.String()}
	}
	if occupant := b.LookAt(pos).Piece; occupant != nil {
		return &errors.MoveError{
			Err:   errors.ErrOccupiedSquare,
			Piece: piece.String(),
			To:    fmt.Sprintf("%v (held by %v)", pos, occupant),
		}
	}
	b.register(piece)
	b.place(piece, pos)
	return nil
}

// register adds piece to the arena and roster once.
func (b *Board) register(piece *ChessPiece) {
	if _, ok := b.pieces[piece.ID]; ok {
		return
	}
	b.pieces[piece.ID] = piece
	b.rosters[piece.Colour] = append(b.rosters[piece.Colour], piece)
}

// Replace moves piece to pos unconditionally. The previous occupant of pos,
// if any, is taken off the board and returned.
func (b *Board) Replace(piece *ChessPiece, pos chess.Position) Square {
	current := b.LookAt(pos)
	if current.Piece == piece {
		return Square{}
	}
	if current.Piece != nil {
		b.place(current.Piece, chess.Position{})
	}
	b.register(piece)
	b.place(piece, pos)
	return current
}

// place is the single mutation primitive: it vacates piece's square and
// puts it on pos, or takes it off the board when pos is the zero Position.
// The caller guarantees pos is empty.
func (b *Board) place(piece *ChessPiece, pos chess.Position) {
	if old, ok := b.positions[piece.ID]; ok {
		c, r := chess.ColIndex(old.Col), chess.RankIndex(old.Rank)
		if b.squares[c][r] == piece {
			b.squares[c][r] = nil
		}
		delete(b.positions, piece.ID)
	}
	if !pos.IsValid() {
		return
	}
	b.squares[chess.ColIndex(pos.Col)][chess.RankIndex(pos.Rank)] = piece
	b.positions[piece.ID] = pos
}

// RangeCast walks from from in dir up to limit squares, stopping after the
// first occupied square. The blocker is included whatever its colour.
func (b *Board) RangeCast(from chess.Position, dir chess.Direction, limit int) []chess.Position {
	var out []chess.Position
	next, ok := dir(from)
	for ok && len(out) < limit {
		out = append(out, next)
		if !b.LookAt(next).IsEmpty() {
			break
		}
		next, ok = dir(next)
	}
	return out
}
