// Package chess provides core chess types and board geometry.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, used to size per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// HomeRank returns the rank the colour's back-rank pieces start on.
func (c Colour) HomeRank() Rank {
	if c == White {
		return FirstRank
	}
	return LastRank
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() Rank {
	if c == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// PromotionRank returns the opponent's back rank.
func (c Colour) PromotionRank() Rank {
	return c.Opposite().HomeRank()
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// PromotionPieces lists the kinds a pawn may promote to, in serialization order.
var PromotionPieces = []Piece{Queen, Knight, Bishop, Rook}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the SAN letter of a piece. Pawns and Empty have none.
func (p Piece) Letter() string {
	switch p {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Value returns a rough material weight, used to rank captures.
func (p Piece) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop, Rook:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	default:
		return 0
	}
}

// PieceFromLetter converts a SAN piece letter to a piece kind.
// Upper case only; lower-case letters denote files.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return Empty
	}
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = Rank(RankBase)
	LastRank  = Rank(RankBase + BoardSize - 1)
	FirstCol  = Col(ColBase)
	LastCol   = Col(ColBase + BoardSize - 1)
)

// IsCol returns true if c is a valid column (file) character.
func IsCol(c byte) bool {
	return c >= byte(FirstCol) && c <= byte(LastCol)
}

// IsRank returns true if c is a valid rank character.
func IsRank(c byte) bool {
	return c >= byte(FirstRank) && c <= byte(LastRank)
}

// ColIndex converts a column to a 0-7 array index.
func ColIndex(col Col) int {
	return int(col - FirstCol)
}

// RankIndex converts a rank to a 0-7 array index.
func RankIndex(rank Rank) int {
	return int(rank - FirstRank)
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
