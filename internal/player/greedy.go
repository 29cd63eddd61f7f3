package player

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Greedy captures the most valuable piece it can reach and otherwise plays
// a random legal move. It does not search.
type Greedy struct {
	name string
	rng  *rand.Rand
}

// NewGreedy returns a greedy player.
func NewGreedy(name string, seed int64) *Greedy {
	return &Greedy{name: name, rng: rand.New(rand.NewSource(seed))}
}

// Name returns the player's name.
func (g *Greedy) Name() string { return g.name }

// MakeMove prefers the capture with the highest victim value; ties go to
// the first piece in roster order. Promotions count as gaining the new
// piece's value.
func (g *Greedy) MakeMove(ctx context.Context, b *engine.Board, _ chess.Colour, pieces []*engine.ChessPiece) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}
	moves := legalMoves(b, pieces)
	if len(moves) == 0 {
		return game.Resign(), nil
	}

	best, bestGain := -1, 0
	for i, c := range moves {
		if gain := gain(b, c); gain > bestGain {
			best, bestGain = i, gain
		}
	}
	if best >= 0 {
		return moves[best].action(), nil
	}
	return moves[g.rng.Intn(len(moves))].action(), nil
}

// gain is the material a move wins at once.
func gain(b *engine.Board, c candidate) int {
	value := 0
	switch c.move.Class {
	case engine.EnPassantMove:
		value = chess.Pawn.Value()
	case engine.CastlingMove:
		return 0
	default:
		if victim := b.LookAt(c.move.To).Piece; victim != nil {
			value = victim.Kind.Value()
		}
	}
	if c.move.IsPromotion() {
		value += c.move.Promotion.Value()
	}
	return value
}
