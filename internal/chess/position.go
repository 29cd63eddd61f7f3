package chess

import "strings"

// Position is a square on the board. The zero value is not on the board.
type Position struct {
	Col  Col
	Rank Rank
}

// Direction steps from a position to a neighbouring one, reporting
// false when the step would leave the board.
type Direction func(Position) (Position, bool)

// Unbounded is the range-cast limit that covers the whole board.
const Unbounded = BoardSize

// NewPosition returns the position at col and rank.
func NewPosition(col Col, rank Rank) Position {
	return Position{Col: col, Rank: rank}
}

// ParsePosition parses "e4" or "E4".
func ParsePosition(s string) (Position, bool) {
	if len(s) != 2 {
		return Position{}, false
	}
	col := strings.ToLower(s[:1])[0]
	if !IsCol(col) || !IsRank(s[1]) {
		return Position{}, false
	}
	return Position{Col: Col(col), Rank: Rank(s[1])}, true
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// Intended for fixtures and tables.
func MustParsePosition(s string) Position {
	p, ok := ParsePosition(s)
	if !ok {
		panic("chess: invalid position " + s)
	}
	return p
}

// IsValid reports whether p lies on the 8x8 board.
func (p Position) IsValid() bool {
	return IsCol(byte(p.Col)) && IsRank(byte(p.Rank))
}

// String returns the canonical "<FILE><rank>" form, e.g. "E4".
func (p Position) String() string {
	if !p.IsValid() {
		return "--"
	}
	return string([]byte{byte(p.Col) - ColBase + 'A', byte(p.Rank)})
}

// Lower returns the "e4" form used in algebraic notation.
func (p Position) Lower() string {
	return strings.ToLower(p.String())
}

// Offset returns the position dc files and dr ranks away.
func (p Position) Offset(dc, dr int) (Position, bool) {
	q := Position{Col: Col(int(p.Col) + dc), Rank: Rank(int(p.Rank) + dr)}
	if !p.IsValid() || !q.IsValid() {
		return Position{}, false
	}
	return q, true
}

func (p Position) Left() (Position, bool)      { return p.Offset(-1, 0) }
func (p Position) Right() (Position, bool)     { return p.Offset(1, 0) }
func (p Position) Up() (Position, bool)        { return p.Offset(0, 1) }
func (p Position) Down() (Position, bool)      { return p.Offset(0, -1) }
func (p Position) UpLeft() (Position, bool)    { return p.Offset(-1, 1) }
func (p Position) UpRight() (Position, bool)   { return p.Offset(1, 1) }
func (p Position) DownLeft() (Position, bool)  { return p.Offset(-1, -1) }
func (p Position) DownRight() (Position, bool) { return p.Offset(1, -1) }

// Forward steps one rank towards the opponent: up for White, down for Black.
func (p Position) Forward(colour Colour) (Position, bool) {
	return p.Offset(0, ColourOffset(colour))
}

// ForwardDirection returns Forward bound to colour.
func ForwardDirection(colour Colour) Direction {
	return func(p Position) (Position, bool) { return p.Forward(colour) }
}

// Direction tables. Orthogonals then diagonals.
var (
	Orthogonals = []Direction{Position.Up, Position.Down, Position.Left, Position.Right}
	Diagonals   = []Direction{Position.UpLeft, Position.UpRight, Position.DownLeft, Position.DownRight}
)

// AllDirections returns the eight king directions.
func AllDirections() []Direction {
	dirs := make([]Direction, 0, len(Orthogonals)+len(Diagonals))
	dirs = append(dirs, Orthogonals...)
	return append(dirs, Diagonals...)
}

// AllPositions returns every square, rank 1 to 8, file a to h.
func AllPositions() []Position {
	out := make([]Position, 0, BoardSize*BoardSize)
	for rank := FirstRank; rank <= LastRank; rank++ {
		for col := FirstCol; col <= LastCol; col++ {
			out = append(out, Position{Col: col, Rank: rank})
		}
	}
	return out
}
