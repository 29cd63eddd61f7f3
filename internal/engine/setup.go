package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// backRank is the home-rank layout, file a to h.
var backRank = []chess.Piece{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// CreatePieces adds a full army for colour: the back rank on homeRank, left
// to right, followed by eight pawns on pawnRank.
func (b *Board) CreatePieces(colour chess.Colour, homeRank, pawnRank chess.Rank) ([]*ChessPiece, error) {
	pieces := make([]*ChessPiece, 0, 2*chess.BoardSize)
	for i, kind := range backRank {
		pos := chess.NewPosition(chess.FirstCol+chess.Col(i), homeRank)
		p := NewPiece(kind, colour, pos)
		if err := b.Add(p, pos); err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		pos := chess.NewPosition(col, pawnRank)
		p := NewPiece(chess.Pawn, colour, pos)
		if err := b.Add(p, pos); err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}

// NewInitialBoard returns a board set up for a standard game.
func NewInitialBoard() *Board {
	b := NewBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := b.CreatePieces(colour, colour.HomeRank(), colour.PawnRank()); err != nil {
			// An empty board has room for both armies.
			panic(err)
		}
	}
	return b
}

// ParseSetupToken parses a piece-position token such as "Rf1" or "e2".
// No letter means a pawn.
func ParseSetupToken(token string) (chess.Piece, chess.Position, error) {
	kind := chess.Pawn
	rest := token
	if len(token) == 3 {
		kind = chess.PieceFromLetter(token[0])
		rest = token[1:]
	}
	pos, ok := chess.ParsePosition(rest)
	if kind == chess.Empty || !ok || len(token) < 2 || len(token) > 3 {
		return chess.Empty, chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSetup,
			Input:    token,
			Expected: "<piece letter?><file><rank>",
		}
	}
	return kind, pos, nil
}

// NewBoardFromSetup builds a board from per-colour token lists, e.g.
// white {"Rf1", "Kg1", "f2"}. Pieces start pristine, except pawns off
// their starting rank.
func NewBoardFromSetup(white, black []string) (*Board, error) {
	b := NewBoard()
	if err := b.addTokens(chess.White, white); err != nil {
		return nil, err
	}
	if err := b.addTokens(chess.Black, black); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) addTokens(colour chess.Colour, tokens []string) error {
	for _, token := range tokens {
		kind, pos, err := ParseSetupToken(token)
		if err != nil {
			return err
		}
		p := NewPiece(kind, colour, pos)
		if kind == chess.Pawn {
			p.Pristine = pos.Rank == colour.PawnRank()
		}
		if err := b.Add(p, pos); err != nil {
			return fmt.Errorf("%v %s: %w", colour, token, err)
		}
	}
	return nil
}
