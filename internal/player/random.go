package player

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Random plays a uniformly chosen legal move and resigns when it has none.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom returns a random player. Equal seeds give equal games.
func NewRandom(name string, seed int64) *Random {
	return &Random{name: name, rng: rand.New(rand.NewSource(seed))}
}

// Name returns the player's name.
func (r *Random) Name() string { return r.name }

// MakeMove picks any legal move.
func (r *Random) MakeMove(ctx context.Context, b *engine.Board, _ chess.Colour, pieces []*engine.ChessPiece) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}
	moves := legalMoves(b, pieces)
	if len(moves) == 0 {
		return game.Resign(), nil
	}
	return moves[r.rng.Intn(len(moves))].action(), nil
}
