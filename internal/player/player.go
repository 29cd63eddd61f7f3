// Package player provides game.Player implementations: random and greedy
// computer players, a scripted player and a line-based human player.
package player

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// candidate is a legal move together with the piece making it.
type candidate struct {
	piece *engine.ChessPiece
	move  engine.Move
}

func (c candidate) action() game.Action {
	return game.Play(c.piece, c.move)
}

// legalMoves lists every legal move of pieces, in roster order.
func legalMoves(b *engine.Board, pieces []*engine.ChessPiece) []candidate {
	var out []candidate
	for _, p := range pieces {
		for _, mv := range b.ValidMoves(p) {
			out = append(out, candidate{piece: p, move: mv})
		}
	}
	return out
}

// Kinds accepted by New.
const (
	KindRandom = "random"
	KindGreedy = "greedy"
	KindHuman  = "human"
)

// New builds a computer or human player by kind name. Human players read
// from in and prompt on out.
func New(kind, name string, seed int64, in io.Reader, out io.Writer) (game.Player, error) {
	switch kind {
	case KindRandom:
		return NewRandom(name, seed), nil
	case KindGreedy:
		return NewGreedy(name, seed), nil
	case KindHuman:
		return NewHuman(name, in, out), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q: %w", kind, errors.ErrInvalidConfig)
	}
}
