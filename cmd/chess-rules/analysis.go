// analysis.go - Position classification for -status
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// classifyPosition prints the status of the configured position and the
// legal moves of the side to move.
func classifyPosition(cfg *config.Config, w io.Writer) error {
	board, toMove, err := newBoard(cfg)
	if err != nil {
		return err
	}
	board.SetLog(cfg.LogFile)

	moves := notation.LegalMoves(board, toMove)

	fmt.Fprintf(w, "FEN: %s\n", board.FEN(toMove))
	fmt.Fprintf(w, "To move: %v\n", toMove)
	fmt.Fprintf(w, "Status: %v\n", board.KingStatus(toMove))
	fmt.Fprintf(w, "Legal moves (%d): %s\n", len(moves), strings.Join(moves, " "))
	return nil
}
