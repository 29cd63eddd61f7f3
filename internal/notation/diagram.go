package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DrawBoard renders b as text, rank 8 at the top. White pieces are upper
// case, black lower case and empty squares are dots:
//
//	8 r n b q k b n r
//	...
//	1 R N B Q K B N R
//	  a b c d e f g h
func DrawBoard(b *engine.Board) string {
	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(squareLetter(b.LookAt(chess.NewPosition(col, rank))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(col))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func squareLetter(sq engine.Square) byte {
	if sq.IsEmpty() {
		return '.'
	}
	letter := byte('P')
	if l := sq.Piece.Kind.Letter(); l != "" {
		letter = l[0]
	}
	if sq.Piece.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}
