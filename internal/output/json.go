package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	PlyCount   int               `json:"plyCount"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	InitialFEN string            `json:"initialFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	Check      bool   `json:"check,omitempty"`
	Mate       bool   `json:"mate,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputRecordsJSON outputs multiple records as a JSON array.
func OutputRecordsJSON(records []*game.Record, cfg *config.Config, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(records))}
	for i, rec := range records {
		out.Games[i] = RecordToJSON(rec, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// RecordToJSON converts a game record into its JSON form.
func RecordToJSON(rec *game.Record, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Tags:       make(map[string]string),
		Moves:      convertMoveList(rec),
		Result:     resultToken(rec),
		Reason:     rec.Reason,
		PlyCount:   rec.Plies(),
		InitialFEN: rec.StartFEN,
	}
	for _, tag := range recordTags(rec, cfg) {
		jg.Tags[tag[0]] = tag[1]
	}
	if cfg.Output.KeepFinalFEN {
		jg.FinalFEN = rec.FinalFEN
	}
	return jg
}

// convertMoveList numbers each SAN move and flags checks.
func convertMoveList(rec *game.Record) []JSONMove {
	if len(rec.Moves) == 0 {
		return nil
	}
	moves := make([]JSONMove, 0, len(rec.Moves))
	number := 1
	blackFirst := strings.Contains(rec.StartFEN, " b ")
	for i, san := range rec.Moves {
		white := (i%2 == 0) != blackFirst
		moves = append(moves, JSONMove{
			MoveNumber: number,
			Color:      colorName(white),
			SAN:        san,
			Check:      strings.HasSuffix(san, "+"),
			Mate:       strings.HasSuffix(san, "#"),
		})
		if !white {
			number++
		}
	}
	return moves
}

// colorName returns "white" or "black".
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}
