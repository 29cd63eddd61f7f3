package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Outcome is the result of a finished or abandoned game.
type Outcome int

const (
	Unfinished Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN-style result token.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// winner returns the outcome in which colour wins.
func winner(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Reasons a game ends.
const (
	ReasonCheckmate  = "checkmate"
	ReasonStalemate  = "stalemate"
	ReasonResigned   = "resignation"
	ReasonRoundLimit = "round limit"
	ReasonScriptEnd  = "no more moves"
)

// Record is the transcript of one game.
type Record struct {
	Index    int      `json:"index"`
	White    string   `json:"white"`
	Black    string   `json:"black"`
	StartFEN string   `json:"start_fen"`
	Moves    []string `json:"moves"`
	Outcome  Outcome  `json:"-"`
	Result   string   `json:"result"`
	Reason   string   `json:"reason"`
	FinalFEN string   `json:"final_fen"`
}

// Plies returns the number of half-moves played.
func (r *Record) Plies() int {
	return len(r.Moves)
}

// Transcript returns the moves in numbered pairs, e.g. "1. e4 e5 2. Nf3".
// A game starting with Black to move opens with "1...".
func (r *Record) Transcript() string {
	var sb strings.Builder
	number := 1
	blackFirst := strings.Contains(r.StartFEN, " b ")
	for i, san := range r.Moves {
		white := (i%2 == 0) != blackFirst
		switch {
		case i == 0 && !white:
			fmt.Fprintf(&sb, "%d... ", number)
		case white:
			fmt.Fprintf(&sb, "%d. ", number)
		}
		sb.WriteString(san)
		if !white {
			number++
		}
		if i < len(r.Moves)-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (r *Record) finish(outcome Outcome, reason string) {
	r.Outcome = outcome
	r.Result = outcome.String()
	r.Reason = reason
}
