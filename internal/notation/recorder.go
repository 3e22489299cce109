package notation

import (
	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/engine"
)

// Recorder builds the export chain of the activation in progress from the
// outcomes of its steps. A completed chain equal to the last imported one
// is suppressed, since it is the opponent's move being replayed locally.
type Recorder struct {
	piece    chess.PieceID
	squares  []chess.Square
	imported string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{piece: chess.NoPiece}
}

// Imported remembers text as the chain most recently received from the
// other side.
func (r *Recorder) Imported(text string) {
	r.imported = Normalize(text)
}

// Observe adds one step. When the step completes the activation it returns
// the chain text and true; the recorder then starts afresh.
func (r *Recorder) Observe(out engine.Outcome) (string, bool) {
	if len(r.squares) == 0 || out.Piece != r.piece {
		r.piece = out.Piece
		r.squares = append(r.squares[:0], out.From)
	}
	r.squares = append(r.squares, out.To)
	if !out.Completed {
		return "", false
	}

	text := FormatChain(r.squares)
	r.Reset()
	if text == r.imported {
		r.imported = ""
		return "", false
	}
	return text, true
}

// Pending returns the chain text recorded so far for an open activation.
func (r *Recorder) Pending() string {
	return FormatChain(r.squares)
}

// Reset drops any partial chain, e.g. after an undo.
func (r *Recorder) Reset() {
	r.piece = chess.NoPiece
	r.squares = r.squares[:0]
}
