// Package notation reads, checks and replays move chains.
//
// A chain is the list of squares a single activation passes through, written
// as concatenated algebraic tokens with no separators: "A1A2A3" moves the
// piece on A1 two steps forward. The first square names the piece; each
// following square is one step. Whitespace anywhere in the text is ignored.
package notation

import (
	"strings"
	"unicode"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// tokenLen is the width of one algebraic square token.
const tokenLen = 2

// ParseChain splits text into squares. Empty text, text of odd length
// and malformed tokens fail with errors.ErrInvalidNotation.
func ParseChain(text string) ([]chess.Square, error) {
	compact := stripSpace(text)
	if compact == "" {
		return nil, &errors.NotationError{Err: errors.ErrInvalidNotation, Index: -1}
	}
	if len(compact)%tokenLen != 0 {
		return nil, &errors.NotationError{Err: errors.ErrInvalidNotation, Token: compact, Index: -1}
	}

	squares := make([]chess.Square, 0, len(compact)/tokenLen)
	for i := 0; i < len(compact); i += tokenLen {
		tok := compact[i : i+tokenLen]
		sq, err := chess.ParseSquare(tok)
		if err != nil {
			return nil, &errors.NotationError{Err: errors.ErrInvalidNotation, Token: tok, Index: i / tokenLen}
		}
		squares = append(squares, sq)
	}
	return squares, nil
}

// FormatChain writes squares as chain text, e.g. "A1A2A3".
func FormatChain(squares []chess.Square) string {
	var sb strings.Builder
	sb.Grow(len(squares) * tokenLen)
	for _, sq := range squares {
		sb.WriteString(sq.String())
	}
	return sb.String()
}

// Normalize returns text in canonical form: no whitespace, upper case.
func Normalize(text string) string {
	return strings.ToUpper(stripSpace(text))
}

func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
