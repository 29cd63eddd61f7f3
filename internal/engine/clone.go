package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Clone returns an independent deep copy of the board. Piece IDs are kept,
// so pieces of the copy are found with Piece(original.ID).
func (b *Board) Clone() *Board {
	nb := &Board{
		pieces:    make(map[uuid.UUID]*ChessPiece, len(b.pieces)),
		positions: make(map[uuid.UUID]chess.Position, len(b.positions)),
		log:       b.log,
	}
	for id, p := range b.pieces {
		cp := *p
		nb.pieces[id] = &cp
	}
	for c := range b.rosters {
		nb.rosters[c] = make([]*ChessPiece, 0, len(b.rosters[c]))
		for _, p := range b.rosters[c] {
			nb.rosters[c] = append(nb.rosters[c], nb.pieces[p.ID])
		}
	}
	for id, pos := range b.positions {
		nb.place(nb.pieces[id], pos)
	}
	if b.lastMove != nil {
		last := *b.lastMove
		nb.lastMove = &last
	}
	return nb
}
