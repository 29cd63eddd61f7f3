// Package output writes finished game records as text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputRecord writes one record as tag pairs followed by its move text.
func OutputRecord(rec *game.Record, cfg *config.Config, w io.Writer) {
	if cfg.Output.KeepTags {
		outputTags(rec, cfg, w)
		fmt.Fprintln(w)
	}

	outputMoves(rec, cfg, w)

	// Blank line between games
	fmt.Fprintln(w)
}

// recordTags returns the tag pairs for a record in output order.
func recordTags(rec *game.Record, cfg *config.Config) [][2]string {
	tags := [][2]string{
		{"Event", "chess-rules game"},
		{"Round", strconv.Itoa(rec.Index + 1)},
		{"White", rec.White},
		{"Black", rec.Black},
		{"Result", resultToken(rec)},
	}
	if rec.StartFEN != "" && rec.StartFEN != standardFEN {
		tags = append(tags, [2]string{"SetUp", "1"}, [2]string{"FEN", rec.StartFEN})
	}
	if rec.Reason != "" {
		tags = append(tags, [2]string{"Termination", rec.Reason})
	}
	tags = append(tags, [2]string{"PlyCount", strconv.Itoa(rec.Plies())})
	if cfg.Output.KeepFinalFEN && rec.FinalFEN != "" {
		tags = append(tags, [2]string{"FinalFEN", rec.FinalFEN})
	}
	return tags
}

const standardFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// outputTags outputs the record tags.
func outputTags(rec *game.Record, cfg *config.Config, w io.Writer) {
	for _, tag := range recordTags(rec, cfg) {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves outputs the numbered moves and the result token.
func outputMoves(rec *game.Record, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	number := 1
	blackFirst := strings.Contains(rec.StartFEN, " b ")
	for i, san := range rec.Moves {
		white := (i%2 == 0) != blackFirst
		switch {
		case white:
			ow.Write(strconv.Itoa(number) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(number) + "...")
		}
		ow.Write(san)
		if !white {
			number++
		}
	}

	ow.Write(resultToken(rec))
	ow.NewLine()
}

func resultToken(rec *game.Record) string {
	if rec.Result == "" {
		return game.Unfinished.String()
	}
	return rec.Result
}
