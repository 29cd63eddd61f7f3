package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// ToAlgebraic writes move in algebraic notation. teammates are the other
// pieces of the mover's side; same-kind pieces among them that can also
// reach the destination force a departure file, then rank.
//
// Captures are marked with "x"; pawn captures always name their file.
// Promotions append "=<letter>". Check and mate suffixes are left to
// Annotate.
func ToAlgebraic(b *engine.Board, piece *engine.ChessPiece, move engine.Move, teammates []*engine.ChessPiece) (string, error) {
	from, err := b.PositionOf(piece)
	if err != nil {
		return "", err
	}
	dest := move.To.Lower()

	switch move.Class {
	case engine.CastlingMove:
		if move.Side == engine.ShortCastle {
			return "0-0", nil
		}
		return "0-0-0", nil
	case engine.EnPassantMove:
		return string(from.Col) + "x" + dest + "e.p.", nil
	}

	capture := !b.LookAt(move.To).IsEmpty()

	var rivals []*engine.ChessPiece
	for _, p := range teammates {
		if p == piece || p.Kind != piece.Kind || !b.IsOnBoard(p) {
			continue
		}
		if b.HasMoveTo(p, move.To) {
			rivals = append(rivals, p)
		}
	}

	var sb strings.Builder
	sb.WriteString(piece.Notation())
	switch {
	case len(rivals) == 0:
		if capture && piece.Notation() == "" {
			sb.WriteByte(byte(from.Col))
		}
	case !sharesFile(b, rivals, from):
		sb.WriteByte(byte(from.Col))
	default:
		sb.WriteString(from.Lower())
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(dest)
	if move.IsPromotion() {
		sb.WriteString("=" + move.Promotion.Letter())
	}
	return sb.String(), nil
}

func sharesFile(b *engine.Board, pieces []*engine.ChessPiece, from chess.Position) bool {
	for _, p := range pieces {
		if pos, ok := b.Position(p); ok && pos.Col == from.Col {
			return true
		}
	}
	return false
}

// Annotate appends "+" or "#" for the status of the side to move next.
func Annotate(san string, opponent engine.Status) string {
	switch opponent {
	case engine.StatusCheck:
		return san + "+"
	case engine.StatusCheckmate:
		return san + "#"
	default:
		return san
	}
}
