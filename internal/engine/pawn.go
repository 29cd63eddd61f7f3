package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMover pushes forward onto empty squares and captures diagonally.
type pawnMover struct{}

// advances returns the empty squares ahead of the pawn: two when it is
// pristine, otherwise one.
func (pawnMover) advances(b *Board, p *ChessPiece, from chess.Position) []chess.Position {
	limit := 1
	if p.Pristine {
		limit = 2
	}
	var out []chess.Position
	for _, to := range b.RangeCast(from, chess.ForwardDirection(p.Colour), limit) {
		if !b.LookAt(to).IsEmpty() {
			break
		}
		out = append(out, to)
	}
	return out
}

// captures returns the forward diagonals holding an opponent.
func (pm pawnMover) captures(b *Board, p *ChessPiece, from chess.Position) []chess.Position {
	var out []chess.Position
	for _, to := range pm.attacks(b, p, from) {
		if p.IsOpponent(b.LookAt(to).Piece) {
			out = append(out, to)
		}
	}
	return out
}

func (pm pawnMover) moves(b *Board, p *ChessPiece, from chess.Position) []chess.Position {
	var out []chess.Position
	for _, to := range append(pm.advances(b, p, from), pm.captures(b, p, from)...) {
		if to.Rank != p.Colour.PromotionRank() {
			out = append(out, to)
		}
	}
	return out
}

func (pm pawnMover) specialMoves(b *Board, p *ChessPiece, from chess.Position, _ bool) []Move {
	var out []Move
	for _, to := range append(pm.advances(b, p, from), pm.captures(b, p, from)...) {
		if to.Rank != p.Colour.PromotionRank() {
			continue
		}
		for _, kind := range chess.PromotionPieces {
			out = append(out, Move{Class: PromotionMove, From: from, To: to, Promotion: kind})
		}
	}
	return append(out, pm.enPassant(b, p, from)...)
}

// enPassant offers the capture of an adjacent enemy pawn whose double step
// was the last move played.
func (pawnMover) enPassant(b *Board, p *ChessPiece, from chess.Position) []Move {
	last := b.lastMove
	if !last.IsDoubleStep() {
		return nil
	}
	var out []Move
	for _, side := range []chess.Direction{chess.Position.Left, chess.Position.Right} {
		beside, ok := side(from)
		if !ok {
			continue
		}
		victim := b.LookAt(beside).Piece
		if victim == nil || victim.Kind != chess.Pawn || !p.IsOpponent(victim) || victim.ID != last.Piece {
			continue
		}
		to, ok := beside.Forward(p.Colour)
		if !ok || !b.LookAt(to).IsEmpty() {
			continue
		}
		out = append(out, Move{Class: EnPassantMove, From: from, To: to, Captured: victim.ID})
	}
	return out
}

func (pawnMover) attacks(_ *Board, p *ChessPiece, from chess.Position) []chess.Position {
	ahead, ok := from.Forward(p.Colour)
	if !ok {
		return nil
	}
	var out []chess.Position
	if to, ok := ahead.Left(); ok {
		out = append(out, to)
	}
	if to, ok := ahead.Right(); ok {
		out = append(out, to)
	}
	return out
}
