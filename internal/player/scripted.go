package player

import (
	"context"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Scripted replays a fixed list of moves in algebraic notation.
type Scripted struct {
	name  string
	moves []string
	next  int
}

// NewScripted returns a player that plays moves in order.
func NewScripted(name string, moves []string) *Scripted {
	return &Scripted{name: name, moves: moves}
}

// Name returns the player's name.
func (s *Scripted) Name() string { return s.name }

// Remaining returns the number of moves not yet played.
func (s *Scripted) Remaining() int {
	return len(s.moves) - s.next
}

// MakeMove plays the next scripted move. It returns ErrNoMoreMoves when
// the script is exhausted and ErrNotation when a move does not resolve.
// "resign" in the script resigns.
func (s *Scripted) MakeMove(ctx context.Context, b *engine.Board, _ chess.Colour, pieces []*engine.ChessPiece) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}
	if s.next >= len(s.moves) {
		return game.Action{}, errors.ErrNoMoreMoves
	}
	text := s.moves[s.next]
	s.next++

	if text == "resign" {
		return game.Resign(), nil
	}
	parsed, ok := notation.ParseMove(b, text, pieces)
	if !ok {
		return game.Action{}, &errors.ParseError{
			Err:      errors.ErrNotation,
			Input:    text,
			Expected: "a legal move",
		}
	}
	return game.Play(parsed.Piece, parsed.Move), nil
}

// Split divides a move list alternating from first into per-side
// scripts, e.g. for "e4 e5 Nf3" with White first: {e4, Nf3} and {e5}.
// Move numbers such as "1." are dropped, and an en passant suffix written
// as a separate word ("exd6 e.p.") stays with its move.
func Split(moves []string, first chess.Colour) (white, black []string) {
	side := first
	var last *[]string
	for _, m := range moves {
		if isMoveNumber(m) {
			continue
		}
		if strings.HasPrefix(m, "e.p.") && last != nil {
			(*last)[len(*last)-1] += m
			continue
		}
		if side == chess.White {
			white = append(white, m)
			last = &white
		} else {
			black = append(black, m)
			last = &black
		}
		side = side.Opposite()
	}
	return white, black
}

func isMoveNumber(s string) bool {
	if s == "" || s[len(s)-1] != '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '.' && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}
