package notation

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Parsed is a move resolved against a board.
type Parsed struct {
	Piece *engine.ChessPiece
	Move  engine.Move
	Text  string
}

// ParseMove resolves text to one of available's legal moves on b.
// It reports false when the text is malformed, matches no legal move or
// matches more than one piece, so the caller can ask again.
func ParseMove(b *engine.Board, text string, available []*engine.ChessPiece) (Parsed, bool) {
	tok, err := Decode(text)
	if err != nil {
		return Parsed{}, false
	}
	return Resolve(b, tok, available)
}

// Resolve is ParseMove for an already decoded token.
func Resolve(b *engine.Board, tok Token, available []*engine.ChessPiece) (Parsed, bool) {
	if tok.IsCastle() {
		return resolveCastle(b, tok, available)
	}

	var candidates []*engine.ChessPiece
	for _, p := range available {
		if p.Kind == tok.Piece && b.HasMoveTo(p, tok.To) {
			candidates = append(candidates, p)
		}
	}

	piece := selectPiece(b, candidates, tok.FromCol, tok.FromRank)
	if piece == nil {
		return Parsed{}, false
	}

	for _, mv := range b.ValidMoves(piece) {
		if mv.To != tok.To || mv.IsCastle() {
			continue
		}
		if tok.Promotion != chess.Empty {
			if mv.IsPromotion() && mv.Promotion == tok.Promotion {
				return Parsed{Piece: piece, Move: mv, Text: tok.Text}, true
			}
			continue
		}
		if mv.IsPromotion() || (tok.EnPassant && !mv.IsEnPassant()) {
			continue
		}
		return Parsed{Piece: piece, Move: mv, Text: tok.Text}, true
	}
	return Parsed{}, false
}

func resolveCastle(b *engine.Board, tok Token, available []*engine.ChessPiece) (Parsed, bool) {
	for _, p := range available {
		if p.Kind != chess.King {
			continue
		}
		for _, mv := range b.ValidMoves(p) {
			if mv.IsCastle() && mv.Side == tok.Castle {
				return Parsed{Piece: p, Move: mv, Text: tok.Text}, true
			}
		}
	}
	return Parsed{}, false
}

// selectPiece narrows candidates by departure file and/or rank. Without
// either, exactly one candidate must remain.
func selectPiece(b *engine.Board, pieces []*engine.ChessPiece, col chess.Col, rank chess.Rank) *engine.ChessPiece {
	if col == 0 && rank == 0 {
		if len(pieces) == 1 {
			return pieces[0]
		}
		return nil
	}

	var matched []*engine.ChessPiece
	for _, p := range pieces {
		pos, ok := b.Position(p)
		if !ok {
			continue
		}
		if (col == 0 || pos.Col == col) && (rank == 0 || pos.Rank == rank) {
			matched = append(matched, p)
		}
	}
	if len(matched) != 1 {
		return nil
	}
	return matched[0]
}
