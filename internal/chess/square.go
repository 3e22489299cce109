package chess

import (
	"fmt"

	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// Square is a board coordinate. File 0 is the A file, Rank 0 is rank 1.
// Holding-rank squares lie outside 0..7 on the rank axis.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds returns true if the square is on the 8x8 board.
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Add returns the square offset by (dx, dy).
func (s Square) Add(dx, dy int) Square {
	return Square{File: s.File + dx, Rank: s.Rank + dy}
}

// Delta returns the offset from s to other.
func (s Square) Delta(other Square) (int, int) {
	return other.File - s.File, other.Rank - s.Rank
}

// String returns the algebraic label, e.g. "A1". Off-board squares are
// written as "(file,rank)".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts an algebraic token such as "A1" to a Square.
// The file letter may be lower case.
func ParseSquare(token string) (Square, error) {
	if len(token) != 2 {
		return Square{}, fmt.Errorf("%q: %w", token, errors.ErrInvalidNotation)
	}
	file := token[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	rank := token[1]
	if file < FileBase || file > FileBase+BoardSize-1 || rank < RankBase || rank > RankBase+BoardSize-1 {
		return Square{}, fmt.Errorf("%q: %w", token, errors.ErrInvalidNotation)
	}
	return Square{File: int(file - FileBase), Rank: int(rank - RankBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed positions in tests and setup code.
func MustParseSquare(token string) Square {
	sq, err := ParseSquare(token)
	if err != nil {
		panic(err)
	}
	return sq
}
