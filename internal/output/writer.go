package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/schackmotor-go/internal/config"
)

// ResultWriter is the interface for writing replay results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteScript writes the result of a single script.
	WriteScript(res *ScriptResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per move followed by an optional board.
type TextWriter struct {
	w    io.Writer
	cfg  *config.Config
	err  error
	seen int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// printf writes formatted text, keeping the first error.
func (tw *TextWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// WriteScript writes a script result in text form.
func (tw *TextWriter) WriteScript(res *ScriptResult) error {
	if tw.seen > 0 {
		tw.printf("\n")
	}
	tw.seen++

	if res.Name != "" {
		tw.printf("== %s #%d ==\n", res.Name, res.Number)
	} else {
		tw.printf("== script %d ==\n", res.Number)
	}
	if res.Error != "" {
		tw.printf("error: %s\n", res.Error)
		return tw.err
	}

	for _, m := range res.Moves {
		if m.OK() {
			tw.printf("%3d %-5s %-8s ok  %s\n", m.Ply, m.Side, m.Move, m.FEN)
		} else {
			tw.printf("%3d %-5s %-8s %s: %s\n", m.Ply, m.Side, m.Move, m.Status, m.Error)
		}
	}
	tw.printf("applied %d, rejected %d\n", res.Applied, res.Rejected)

	if tw.cfg.Output.ShowBoard && res.Board != nil && tw.err == nil {
		tw.err = WriteBoard(tw.w, res.Board, tw.cfg.Rules.BaseLetter)
	}
	return tw.err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return tw.err
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// JSONOutput holds every script result for array output.
type JSONOutput struct {
	Scripts []*ScriptResult `json:"scripts"`
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []*ScriptResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*ScriptResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteScript buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteScript(res *ScriptResult) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	jw.results = append(jw.results, res)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Scripts: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
