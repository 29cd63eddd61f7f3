package game

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Game alternates two players on one board until the game ends.
// It owns the board; players only see it during their turn.
type Game struct {
	board     *engine.Board
	players   [chess.NumColours]Player
	toMove    chess.Colour
	maxRounds int
	log       io.Writer
	verbosity int
	record    *Record
}

// Option configures a Game.
type Option func(*Game)

// WithMaxRounds stops the game after n turns (half-moves). 0 means no limit.
func WithMaxRounds(n int) Option {
	return func(g *Game) {
		if n >= 0 {
			g.maxRounds = n
		}
	}
}

// WithLog sets the diagnostics writer and verbosity. Level 1 logs the end
// of the game and board diagnostics, level 2 every move and the board after it.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		if w != nil {
			g.log = w
			g.verbosity = verbosity
		}
	}
}

// WithToMove sets the side that moves first.
func WithToMove(colour chess.Colour) Option {
	return func(g *Game) {
		g.toMove = colour
	}
}

// WithIndex numbers the game in its record.
func WithIndex(i int) Option {
	return func(g *Game) {
		g.record.Index = i
	}
}

// New creates a game on b. White moves first unless WithToMove says
// otherwise.
func New(b *engine.Board, white, black Player, opts ...Option) *Game {
	g := &Game{
		board:   b,
		players: [chess.NumColours]Player{white, black},
		toMove:  chess.White,
		log:     io.Discard,
		record: &Record{
			White: white.Name(),
			Black: black.Name(),
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.verbosity >= 1 {
		g.board.SetLog(g.log)
	}
	g.record.StartFEN = g.board.FEN(g.toMove)
	g.record.Moves = []string{}
	return g
}

// NewStandard creates a game from the standard starting position.
func NewStandard(white, black Player, opts ...Option) *Game {
	return New(engine.NewInitialBoard(), white, black, opts...)
}

// Board returns the game's board.
func (g *Game) Board() *engine.Board {
	return g.board
}

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Record returns the transcript so far.
func (g *Game) Record() *Record {
	return g.record
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.verbosity >= level {
		fmt.Fprintf(g.log, format+"\n", args...)
	}
}

func (g *Game) logBoard() {
	if g.verbosity >= 2 {
		fmt.Fprint(g.log, notation.DrawBoard(g.board))
	}
}

// Play runs turns until the game ends, the round limit is reached or ctx
// is cancelled. The record is returned even when err is not nil.
func (g *Game) Play(ctx context.Context) (*Record, error) {
	defer func() {
		g.record.FinalFEN = g.board.FEN(g.toMove)
	}()

	g.logBoard()
	for round := 1; g.maxRounds == 0 || round <= g.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return g.record, err
		}
		done, err := g.Step(ctx)
		if err != nil || done {
			return g.record, err
		}
	}

	// A mate delivered on the last allowed turn still ends the game.
	if done := g.classify(); !done {
		g.record.finish(Unfinished, ReasonRoundLimit)
		g.logf(1, "game %d: stopped after %d rounds", g.record.Index, g.maxRounds)
	}
	return g.record, nil
}

// classify finishes the record if the side to move is mated or
// stalemated.
func (g *Game) classify() bool {
	switch g.board.KingStatus(g.toMove) {
	case engine.StatusCheckmate:
		g.record.finish(winner(g.toMove.Opposite()), ReasonCheckmate)
	case engine.StatusStalemate:
		g.record.finish(Draw, ReasonStalemate)
	default:
		return false
	}
	g.logf(1, "game %d: %s, %s", g.record.Index, g.record.Reason, g.record.Result)
	return true
}

// Step plays a single turn. It reports true once the game is over.
func (g *Game) Step(ctx context.Context) (bool, error) {
	if g.classify() {
		return true, nil
	}

	colour := g.toMove
	player := g.players[colour]
	action, err := player.MakeMove(ctx, g.board, colour, g.board.OnBoard(colour))
	if errors.Is(err, errors.ErrNoMoreMoves) {
		g.record.finish(Unfinished, ReasonScriptEnd)
		g.logf(1, "game %d: %s has no more moves", g.record.Index, player.Name())
		return true, nil
	}
	if err != nil {
		return true, errors.Wrapf(err, "%s (%v)", player.Name(), colour)
	}

	if action.Resign {
		g.record.finish(winner(colour.Opposite()), ReasonResigned)
		g.logf(1, "game %d: %s (%v) resigns", g.record.Index, player.Name(), colour)
		return true, nil
	}

	san, err := g.apply(colour, action)
	if err != nil {
		return true, errors.Wrapf(err, "%s (%v)", player.Name(), colour)
	}
	g.record.Moves = append(g.record.Moves, san)
	g.logf(2, "game %d: %v plays %s", g.record.Index, colour, san)
	g.logBoard()

	g.toMove = colour.Opposite()
	return false, nil
}

// apply plays action for colour and returns its annotated notation.
func (g *Game) apply(colour chess.Colour, action Action) (string, error) {
	piece := action.Piece
	if piece == nil || piece.Colour != colour {
		return "", &errors.MoveError{Err: errors.ErrWrongColour, Piece: piece.String(), To: action.Move.To.String()}
	}

	// Notation depends on the position before the move.
	san, err := notation.ToAlgebraic(g.board, piece, action.Move, g.board.OnBoard(colour))
	if err != nil {
		return "", err
	}
	if _, err := g.board.ApplyMove(piece, action.Move); err != nil {
		return "", err
	}
	return notation.Annotate(san, g.board.KingStatus(colour.Opposite())), nil
}
