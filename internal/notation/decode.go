// Package notation translates between board moves and standard algebraic
// notation.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Token is a decoded move string. It is purely syntactic; ParseMove
// resolves it against a board.
type Token struct {
	Text string

	// Piece is Pawn when the text has no piece letter, King for castling.
	Piece chess.Piece

	// Optional departure file and rank, zero when absent.
	FromCol  chess.Col
	FromRank chess.Rank

	Capture   bool
	To        chess.Position
	Promotion chess.Piece // Empty unless "=X" was given
	EnPassant bool
	Castle    engine.CastlingSide

	Check bool
	Mate  bool
}

// IsCastle reports whether the token is 0-0 or 0-0-0.
func (t Token) IsCastle() bool {
	return t.Castle != engine.NoCastle
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// Decode tokenizes one move in algebraic notation:
//
//	[piece]?[file]?[rank]?[x]?[file][rank]([=piece]|e.p.)?[+#]?
//
// or 0-0 / 0-0-0 (O-O forms too), optionally followed by + or #.
func Decode(text string) (Token, error) {
	tok := Token{Text: text, Piece: chess.Pawn}
	fail := func(col int, expected, got string) (Token, error) {
		return Token{}, &errors.ParseError{
			Err:      errors.ErrNotation,
			Input:    text,
			Column:   col + 1,
			Expected: expected,
			Got:      got,
		}
	}
	if text == "" {
		return fail(-1, "a move", "")
	}

	// Trailing annotations are stripped first so the body can be read
	// left to right without lookahead.
	end := len(text)
	for end > 0 && isCheck(text[end-1]) {
		if text[end-1] == '#' {
			tok.Mate = true
		} else {
			tok.Check = true
		}
		end--
	}

	if isCastlingChar(text[0]) {
		return decodeCastle(tok, text[:end], fail)
	}

	body := text[:end]
	if strings.HasSuffix(body, "e.p.") {
		tok.EnPassant = true
		body = strings.TrimRight(strings.TrimSuffix(body, "e.p."), " ")
	}
	if n := len(body); n >= 2 && body[n-2] == '=' {
		promoted := chess.PieceFromLetter(body[n-1])
		if promoted == chess.Empty || promoted == chess.King {
			return fail(n-1, "promotion piece Q, R, B or N", string(body[n-1]))
		}
		tok.Promotion = promoted
		body = body[:n-2]
	}

	pos := 0
	currentChar := func() byte {
		if pos >= len(body) {
			return 0
		}
		return body[pos]
	}

	if kind := chess.PieceFromLetter(currentChar()); kind != chess.Empty {
		tok.Piece = kind
		pos++
	}

	// What remains is [file]?[rank]?[x]?[file][rank].
	rest := len(body) - pos
	if rest < 2 {
		return fail(len(body), "destination square", "end of move")
	}
	dest, ok := chess.ParsePosition(body[len(body)-2:])
	if !ok || !chess.IsCol(body[len(body)-2]) {
		return fail(len(body)-2, "destination square", body[len(body)-2:])
	}
	tok.To = dest

	prefix := body[pos : len(body)-2]
	if strings.HasSuffix(prefix, "x") {
		tok.Capture = true
		prefix = prefix[:len(prefix)-1]
	}
	switch {
	case prefix == "":
	case len(prefix) == 2 && chess.IsCol(prefix[0]) && chess.IsRank(prefix[1]):
		tok.FromCol = chess.Col(prefix[0])
		tok.FromRank = chess.Rank(prefix[1])
	case len(prefix) == 1 && chess.IsCol(prefix[0]):
		tok.FromCol = chess.Col(prefix[0])
	case len(prefix) == 1 && chess.IsRank(prefix[0]):
		tok.FromRank = chess.Rank(prefix[0])
	default:
		return fail(pos, "departure file or rank", prefix)
	}

	if tok.Piece != chess.Pawn && (tok.Promotion != chess.Empty || tok.EnPassant) {
		return fail(0, "pawn move", tok.Piece.Letter())
	}
	if tok.Promotion != chess.Empty && tok.EnPassant {
		return fail(len(body), "promotion or e.p.", "both")
	}
	return tok, nil
}

// decodeCastle reads 0-0 or 0-0-0. Separators are required.
func decodeCastle(tok Token, body string, fail func(int, string, string) (Token, error)) (Token, error) {
	letter := body[0]
	switch body {
	case string([]byte{letter, '-', letter}):
		tok.Castle = engine.ShortCastle
	case string([]byte{letter, '-', letter, '-', letter}):
		tok.Castle = engine.LongCastle
	default:
		return fail(0, "0-0 or 0-0-0", body)
	}
	tok.Piece = chess.King
	return tok, nil
}
