package testutil

import (
	"testing"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/die"
)

// EmptyBoard returns a board with no pieces and the given variant.
func EmptyBoard(variant chess.Variant) *chess.Board {
	return chess.NewBoard(variant)
}

// Place puts a King or Rook (or a die showing 1) on square.
func Place(t *testing.T, b *chess.Board, square string, colour chess.Colour, kind chess.Kind) *chess.Piece {
	t.Helper()
	return PlaceDie(t, b, square, colour, kind, 1)
}

// PlaceDie puts a piece on square; dice kinds show value face-up.
func PlaceDie(t *testing.T, b *chess.Board, square string, colour chess.Colour, kind chess.Kind, value int) *chess.Piece {
	t.Helper()
	sq, err := chess.ParseSquare(square)
	if err != nil {
		t.Fatalf("PlaceDie(%q): %v", square, err)
	}
	if b.At(sq) != nil {
		t.Fatalf("PlaceDie(%q): square already occupied", square)
	}
	o, err := die.FromValue(value)
	if err != nil {
		t.Fatalf("PlaceDie(%q, %d): %v", square, value, err)
	}
	return b.AddDie(kind, colour, sq, o)
}

// Squares parses algebraic tokens, failing the test on a malformed one.
func Squares(t *testing.T, tokens ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, len(tokens))
	for i, tok := range tokens {
		sq, err := chess.ParseSquare(tok)
		if err != nil {
			t.Fatalf("Squares(%q): %v", tok, err)
		}
		out[i] = sq
	}
	return out
}
