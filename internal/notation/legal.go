package notation

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// LegalMoves returns every legal move of colour in annotated algebraic
// notation, piece by piece in roster order. b is not modified.
func LegalMoves(b *engine.Board, colour chess.Colour) []string {
	pieces := b.OnBoard(colour)
	var out []string
	for _, p := range pieces {
		for _, m := range b.ValidMoves(p) {
			san, err := ToAlgebraic(b, p, m, pieces)
			if err != nil {
				continue
			}
			after := b.Clone()
			if _, err := after.ApplyMove(after.Piece(p.ID), m); err != nil {
				continue
			}
			out = append(out, Annotate(san, after.KingStatus(colour.Opposite())))
		}
	}
	return out
}
