package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing game records to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteRecord writes a single game record to the output.
	WriteRecord(rec *game.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the GameWriter selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes records as tag pairs and numbered move text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteRecord writes a record in text format.
func (tw *TextWriter) WriteRecord(rec *game.Record) error {
	OutputRecord(rec, tw.cfg, tw.w)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	records []*game.Record
	single  bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		records: make([]*game.Record, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteRecord buffers a record for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteRecord(rec *game.Record) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(RecordToJSON(rec, jw.cfg))
	}

	jw.records = append(jw.records, rec)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.records) == 0 {
		return nil
	}

	err := OutputRecordsJSON(jw.records, jw.cfg, jw.w)

	// Clear buffer after writing
	jw.records = jw.records[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
