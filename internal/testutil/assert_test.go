package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	dcerrors "github.com/lgbarn/dice-chess-go/internal/errors"
)

// These tests verify the helpers on their success paths.
// Failure paths would need a fake *testing.T.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertEqual(t, []chess.Square{chess.Sq(0, 0)}, []chess.Square{chess.Sq(0, 0)})
	AssertEqual(t, []chess.Square(nil), []chess.Square{})
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", dcerrors.ErrBlocked)
	AssertErrorIs(t, err, dcerrors.ErrBlocked)
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "should be false")
	AssertContains(t, "White Dice", "Dice")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value %d", 42}, "value 42"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPlaceDie(t *testing.T) {
	b := EmptyBoard(chess.Variant{})
	p := PlaceDie(t, b, "C3", chess.White, chess.Dice, 5)

	AssertEqual(t, p.Location, chess.Sq(2, 2))
	AssertEqual(t, p.Value, 5)
	AssertEqual(t, p.Start, 5)
	AssertEqual(t, p.Counter, 5)

	k := Place(t, b, "E1", chess.Black, chess.King)
	AssertEqual(t, k.Value, 1)
	AssertEqual(t, b.At(chess.Sq(4, 0)), k)
}

func TestSquares(t *testing.T) {
	AssertEqual(t, Squares(t, "A1", "h8"), []chess.Square{chess.Sq(0, 0), chess.Sq(7, 7)})
}
