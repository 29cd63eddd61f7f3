// Package game runs a chess game between two players and records it.
package game

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Action is what a player does on its turn: play a move or resign.
type Action struct {
	Resign bool
	Piece  *engine.ChessPiece
	Move   engine.Move
}

// Play returns an action that plays move with piece.
func Play(piece *engine.ChessPiece, move engine.Move) Action {
	return Action{Piece: piece, Move: move}
}

// Resign returns a resignation.
func Resign() Action {
	return Action{Resign: true}
}

// Player chooses moves for one side.
//
// MakeMove is given the live board; it may probe it through the engine's
// read-only API but must not apply moves. pieces are the player's pieces
// still on the board.
type Player interface {
	Name() string
	MakeMove(ctx context.Context, b *engine.Board, colour chess.Colour, pieces []*engine.ChessPiece) (Action, error)
}
