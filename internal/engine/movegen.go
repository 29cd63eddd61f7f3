package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// mover generates geometry-only moves for one piece kind.
type mover interface {
	// moves returns plain destinations. Teammate squares may be included;
	// validMoves drops them.
	moves(b *Board, p *ChessPiece, from chess.Position) []chess.Position

	// specialMoves returns promotion, castling and en passant candidates.
	// skipLegality disables checks that need attack detection.
	specialMoves(b *Board, p *ChessPiece, from chess.Position, skipLegality bool) []Move

	// attacks returns the squares p threatens. It never recurses into
	// legality checking.
	attacks(b *Board, p *ChessPiece, from chess.Position) []chess.Position
}

var movers = map[chess.Piece]mover{
	chess.Pawn:   pawnMover{},
	chess.Knight: knightMover{},
	chess.Bishop: slidingMover{dirs: chess.Diagonals},
	chess.Rook:   slidingMover{dirs: chess.Orthogonals},
	chess.Queen:  slidingMover{dirs: append(append([]chess.Direction{}, chess.Orthogonals...), chess.Diagonals...)},
	chess.King:   kingMover{},
}

// ValidMoves returns the legal moves of piece. A captured piece has none.
func (b *Board) ValidMoves(piece *ChessPiece) []Move {
	return b.validMoves(piece, false)
}

// PseudoLegalMoves returns the moves of piece without the own-king check.
func (b *Board) PseudoLegalMoves(piece *ChessPiece) []Move {
	return b.validMoves(piece, true)
}

func (b *Board) validMoves(piece *ChessPiece, skipLegality bool) []Move {
	from, ok := b.Position(piece)
	if !ok {
		return nil
	}
	m, ok := movers[piece.Kind]
	if !ok {
		return nil
	}

	var candidates []Move
	for _, to := range m.moves(b, piece, from) {
		if piece.IsTeammate(b.LookAt(to).Piece) {
			continue
		}
		candidates = append(candidates, NewMove(from, to))
	}
	candidates = append(candidates, m.specialMoves(b, piece, from, skipLegality)...)

	if skipLegality {
		return candidates
	}
	legal := make([]Move, 0, len(candidates))
	for _, mv := range candidates {
		if b.IsValidMove(piece, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// HasMoveTo reports whether piece has a legal move landing on to.
func (b *Board) HasMoveTo(piece *ChessPiece, to chess.Position) bool {
	for _, mv := range b.ValidMoves(piece) {
		if mv.To == to {
			return true
		}
	}
	return false
}

// knightMover jumps to the eight L-shaped offsets.
type knightMover struct{}

var knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

func (knightMover) moves(_ *Board, _ *ChessPiece, from chess.Position) []chess.Position {
	var out []chess.Position
	for _, o := range knightOffsets {
		if to, ok := from.Offset(o[0], o[1]); ok {
			out = append(out, to)
		}
	}
	return out
}

func (knightMover) specialMoves(*Board, *ChessPiece, chess.Position, bool) []Move { return nil }

func (k knightMover) attacks(b *Board, p *ChessPiece, from chess.Position) []chess.Position {
	return k.moves(b, p, from)
}

// slidingMover covers bishop, rook and queen.
type slidingMover struct {
	dirs []chess.Direction
}

func (s slidingMover) moves(b *Board, _ *ChessPiece, from chess.Position) []chess.Position {
	var out []chess.Position
	for _, dir := range s.dirs {
		out = append(out, b.RangeCast(from, dir, chess.Unbounded)...)
	}
	return out
}

func (slidingMover) specialMoves(*Board, *ChessPiece, chess.Position, bool) []Move { return nil }

func (s slidingMover) attacks(b *Board, p *ChessPiece, from chess.Position) []chess.Position {
	return s.moves(b, p, from)
}
