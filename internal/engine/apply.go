package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove plays a legal move for real and returns the captured square
// content, if any. The move must be one of piece's current ValidMoves;
// only Class, To, Promotion and Side are compared.
func (b *Board) ApplyMove(piece *ChessPiece, move Move) (Square, error) {
	from, err := b.PositionOf(piece)
	if err != nil {
		return Square{}, err
	}

	chosen, ok := b.findLegal(piece, move)
	if !ok {
		return Square{}, &errors.MoveError{
			Err:   errors.ErrInvalidDestination,
			Piece: piece.String(),
			From:  from.String(),
			To:    move.To.String(),
		}
	}

	var captured Square
	switch chosen.Class {
	case PromotionMove:
		if captured, err = b.applyPromotion(piece, from, chosen); err != nil {
			return Square{}, err
		}
	case CastlingMove:
		if err := b.applyCastle(piece, from, chosen); err != nil {
			return Square{}, err
		}
	case EnPassantMove:
		captured = b.applyEnPassant(piece, chosen)
	default:
		captured = b.Replace(piece, chosen.To)
	}

	b.lastMove = &LastMove{Piece: piece.ID, Move: chosen, WasPristine: piece.Pristine}
	piece.Pristine = false
	return captured, nil
}

// MoveTo plays piece's legal move landing on to. Promotions need
// ApplyMove, since the target kind must be chosen.
func (b *Board) MoveTo(piece *ChessPiece, to chess.Position) (Square, error) {
	from, err := b.PositionOf(piece)
	if err != nil {
		return Square{}, err
	}
	for _, mv := range b.ValidMoves(piece) {
		if mv.To == to && mv.Class != PromotionMove {
			return b.ApplyMove(piece, mv)
		}
	}
	return Square{}, &errors.MoveError{
		Err:   errors.ErrInvalidDestination,
		Piece: piece.String(),
		From:  from.String(),
		To:    to.String(),
	}
}

func (b *Board) findLegal(piece *ChessPiece, move Move) (Move, bool) {
	for _, mv := range b.ValidMoves(piece) {
		if mv.Matches(move) {
			return mv, true
		}
	}
	return Move{}, false
}

// applyPromotion removes the pawn and adds a new piece of the chosen kind
// on the destination. On failure the board is as it was.
func (b *Board) applyPromotion(pawn *ChessPiece, from chess.Position, move Move) (Square, error) {
	captured := b.Replace(pawn, move.To)
	b.place(pawn, chess.Position{})

	promoted := NewPiece(move.Promotion, pawn.Colour, chess.Position{})
	promoted.Pristine = false
	if err := b.Add(promoted, move.To); err != nil {
		b.undo(pawn, from, captured, move.To)
		return Square{}, err
	}
	return captured, nil
}

// applyCastle relocates the king and then the rook beside it. On failure
// the board is as it was.
func (b *Board) applyCastle(king *ChessPiece, from chess.Position, move Move) error {
	rook := b.pieces[move.Rook]
	if rook == nil {
		return &errors.MoveError{Err: errors.ErrOffBoard, Piece: "castling rook"}
	}
	displaced := b.Replace(king, move.To)
	if err := b.castle(rook, rookTarget(move)); err != nil {
		b.undo(king, from, displaced, move.To)
		return err
	}
	return nil
}

// undo returns mover to from and puts whatever it displaced back on to.
func (b *Board) undo(mover *ChessPiece, from chess.Position, displaced Square, to chess.Position) {
	b.place(mover, from)
	if displaced.Piece != nil {
		b.place(displaced.Piece, to)
	}
}

// applyEnPassant takes the victim from its own square, which is not the
// capturing pawn's destination.
func (b *Board) applyEnPassant(pawn *ChessPiece, move Move) Square {
	victim := b.pieces[move.Captured]
	if victim != nil {
		b.place(victim, chess.Position{})
	}
	b.Replace(pawn, move.To)
	return Square{Piece: victim}
}
