package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// fenLetter returns the FEN character of piece: upper case for White.
func fenLetter(p *ChessPiece) byte {
	letter := p.Kind.Letter()
	if p.Kind == chess.Pawn {
		letter = "P"
	}
	if p.Colour == chess.Black {
		return byte(unicode.ToLower(rune(letter[0])))
	}
	return letter[0]
}

// NewBoardFromFEN creates a board from a FEN string and returns it with
// the side to move. Only what setup needs is honoured: placement, side,
// castling rights (as pristine kings and rooks) and the en passant square
// (as the last move). Clocks are ignored.
func NewBoardFromFEN(fen string) (*Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, chess.White, err
	}
	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns on their starting rank are pristine; nothing else is.
func parsePiecePositions(board *Board, positions string) error {
	rank := chess.LastRank
	col := chess.FirstCol

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			col = chess.FirstCol
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
		default:
			kind := ConvertFENCharToPiece(byte(c))
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			pos := chess.NewPosition(col, rank)
			if !pos.IsValid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			p := NewPiece(kind, colour, pos)
			p.Pristine = kind == chess.Pawn && rank == colour.PawnRank()
			if err := board.Add(p, pos); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			col++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights marks the king and rook behind each right pristine.
func parseCastlingRights(board *Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var rookCol chess.Col
		switch unicode.ToUpper(c) {
		case 'K':
			rookCol = castlingFiles[ShortCastle].rook
		case 'Q':
			rookCol = castlingFiles[LongCastle].rook
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		home := colour.HomeRank()
		king := board.LookAt(chess.NewPosition('e', home)).Piece
		rook := board.LookAt(chess.NewPosition(rookCol, home)).Piece
		if king == nil || king.Kind != chess.King || king.Colour != colour ||
			rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			return fmt.Errorf("castling right %c without king and rook: %w", c, errors.ErrInvalidFEN)
		}
		king.Pristine = true
		rook.Pristine = true
	}
	return nil
}

// parseEnPassant records the double step implied by the target square.
func parseEnPassant(board *Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParsePosition(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	// White's target is on rank 3 and the pawn on rank 4; Black's on 6 and 5.
	mover := chess.White
	if target.Rank == chess.White.PawnRank()+4 {
		mover = chess.Black
	}
	to, _ := target.Forward(mover)
	from, _ := target.Offset(0, -chess.ColourOffset(mover))
	pawn := board.LookAt(to).Piece
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return fmt.Errorf("no pawn behind en passant square %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.lastMove = &LastMove{Piece: pawn.ID, Move: NewMove(from, to), WasPristine: true}
	return nil
}

// FEN converts the board to a FEN string. Castling rights come from
// pristine kings and rooks, the en passant square from the last move.
// Clocks are not tracked and always read "0 1".
func (b *Board) FEN(toMove chess.Colour) string {
	var sb strings.Builder

	b.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	b.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	b.writeEnPassant(&sb)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (b *Board) writePiecePositions(sb *strings.Builder) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			piece := b.LookAt(chess.NewPosition(col, rank)).Piece
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (b *Board) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRank()
		king := b.LookAt(chess.NewPosition('e', home)).Piece
		if king == nil || king.Kind != chess.King || king.Colour != colour || !king.Pristine {
			continue
		}
		for _, side := range []CastlingSide{ShortCastle, LongCastle} {
			rook := b.LookAt(chess.NewPosition(castlingFiles[side].rook, home)).Piece
			if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || !rook.Pristine {
				continue
			}
			letter := 'K'
			if side == LongCastle {
				letter = 'Q'
			}
			if colour == chess.Black {
				letter = unicode.ToLower(letter)
			}
			sb.WriteRune(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func (b *Board) writeEnPassant(sb *strings.Builder) {
	if b.lastMove.IsDoubleStep() {
		if p := b.pieces[b.lastMove.Piece]; p != nil && p.Kind == chess.Pawn {
			skipped, _ := b.lastMove.Move.From.Forward(p.Colour)
			sb.WriteString(skipped.Lower())
			return
		}
	}
	sb.WriteByte('-')
}
