// Package output writes board positions as text diagrams or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/engine"
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

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Snapshot is one position to report.
type Snapshot struct {
	Label  string // what produced the position, e.g. a chain
	Board  *chess.Board
	Mine   chess.Colour // side whose score is listed first
	Chains []string     // chains played so far
}

// cell returns the two-character diagram cell for p: the kind letter,
// upper case for White, followed by the value for dice kinds.
func cell(p *chess.Piece) string {
	if p == nil {
		return ". "
	}
	letter := string(p.Kind.Letter())
	if p.Colour == chess.Black {
		letter = strings.ToLower(letter)
	}
	if !p.Kind.IsDie() {
		return letter + " "
	}
	return fmt.Sprintf("%s%d", letter, p.Value)
}

const fileHeader = "   A  B  C  D  E  F  G  H"

// FormatBoard draws the board from rank 8 down to rank 1, followed by the
// pieces parked on each holding rank.
func FormatBoard(board *chess.Board) string {
	var sb strings.Builder
	sb.WriteString(fileHeader)
	sb.WriteByte('\n')
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteString(cell(board.At(chess.Sq(file, rank))))
		}
		fmt.Fprintf(&sb, "  %d\n", rank+1)
	}
	sb.WriteString(fileHeader)
	sb.WriteByte('\n')

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		var held []string
		for _, p := range board.Pieces {
			if p.Captured && p.Colour == colour {
				held = append(held, strings.TrimSpace(cell(p)))
			}
		}
		if len(held) > 0 {
			fmt.Fprintf(&sb, "%s held: %s\n", colour, strings.Join(held, " "))
		}
	}
	return sb.String()
}

// Status describes whose turn it is, or who won.
func Status(board *chess.Board) string {
	if board.Over {
		return fmt.Sprintf("%s wins", board.Winner)
	}
	colour, open, ok := engine.ToMove(board)
	switch {
	case !ok:
		return "either side to move"
	case open:
		p := board.Last()
		return fmt.Sprintf("%s at %s continues (%d left)", p.Label(), p.Location, p.Counter)
	default:
		return fmt.Sprintf("%s to move", colour)
	}
}

// FormatScore lists mine's total first, e.g. "White 12 - Black 9".
func FormatScore(board *chess.Board, mine chess.Colour) string {
	own, opp := engine.ScoreBoard(board).For(mine)
	return fmt.Sprintf("%s %d - %s %d", mine, own, mine.Opposite(), opp)
}
