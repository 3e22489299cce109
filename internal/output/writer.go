package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// BoardWriter is the interface for writing positions to output.
// Different implementations handle different output formats (text, JSON).
type BoardWriter interface {
	// WriteSnapshot writes a single position to the output.
	WriteSnapshot(s Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes positions as text diagrams.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteSnapshot writes the label, diagram, score, status and chain list.
func (tw *TextWriter) WriteSnapshot(s Snapshot) error {
	if s.Label != "" {
		if _, err := fmt.Fprintf(tw.w, "[%s]\n", s.Label); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(tw.w, FormatBoard(s.Board)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw.w, "%s; %s\n", FormatScore(s.Board, s.Mine), Status(s.Board)); err != nil {
		return err
	}
	if len(s.Chains) > 0 {
		ow := NewOutputWriter(tw.w, 80)
		for i, chain := range s.Chains {
			ow.Write(fmt.Sprintf("%d.%s", i+1, chain))
		}
		ow.NewLine()
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteSnapshot buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteSnapshot(s Snapshot) error {
	pos := PositionToJSON(s)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(pos)
	}
	jw.positions = append(jw.positions, pos)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

var (
	_ BoardWriter = (*TextWriter)(nil)
	_ BoardWriter = (*JSONWriter)(nil)
)
