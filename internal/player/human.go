package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

const humanHelp = `Commands:
  help              print this help
  board             draw the board again
  moves             list your legal moves
  resign, quit      give up the game

Moves use algebraic notation:
  e4, d8=Q          pawn moves and promotion
  Nf3, Bxe5         piece moves, x marks a capture
  Rdf8, R1a3        departure file or rank when two pieces can move there
  Qh4e1             both, when neither alone is enough
  0-0, 0-0-0        castling (O-O also accepted)
  exd6e.p.          en passant
`

var resignWords = map[string]bool{"resign": true, "quit": true, "exit": true, "give up": true}

// Human reads moves line by line, re-prompting until one resolves.
type Human struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewHuman returns a player reading from r and prompting on w.
func NewHuman(name string, r io.Reader, w io.Writer) *Human {
	return &Human{name: name, in: bufio.NewScanner(r), out: w}
}

// Name returns the player's name.
func (h *Human) Name() string { return h.name }

// MakeMove draws the board, then prompts until a legal move is entered.
// End of input resigns.
func (h *Human) MakeMove(ctx context.Context, b *engine.Board, colour chess.Colour, pieces []*engine.ChessPiece) (game.Action, error) {
	fmt.Fprint(h.out, "\n"+notation.DrawBoard(b))
	for {
		if err := ctx.Err(); err != nil {
			return game.Action{}, err
		}
		fmt.Fprintf(h.out, "%s (%v) to move: ", h.name, colour)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Action{}, err
			}
			fmt.Fprintln(h.out)
			return game.Resign(), nil
		}

		input := strings.TrimSpace(h.in.Text())
		switch {
		case input == "":
			continue
		case resignWords[strings.ToLower(input)]:
			return game.Resign(), nil
		case strings.EqualFold(input, "help"):
			fmt.Fprint(h.out, humanHelp)
			continue
		case strings.EqualFold(input, "board"):
			fmt.Fprint(h.out, notation.DrawBoard(b))
			continue
		case strings.EqualFold(input, "moves"):
			fmt.Fprintln(h.out, strings.Join(notation.LegalMoves(b, colour), " "))
			continue
		}

		if parsed, ok := notation.ParseMove(b, input, pieces); ok {
			return game.Play(parsed.Piece, parsed.Move), nil
		}
		if _, err := notation.Decode(input); err != nil {
			fmt.Fprintf(h.out, "%v (type help for notation)\n", err)
		} else {
			fmt.Fprintf(h.out, "%q is not a legal move here\n", input)
		}
	}
}
