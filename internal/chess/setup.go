package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// DefaultSetup is the starting pattern: the home rank on the first line and
// the rank in front of it on the second. It is written from White's side;
// Black gets the same pattern rotated by 180 degrees.
const DefaultSetup = "DDDKQDDD\n   RR   \n"

// queenFile is the pattern column that holds the queen-or-dice slot.
const queenFile = 4

// PatternFor returns DefaultSetup with the queen slot filled for the variant.
func PatternFor(withQueen bool) string {
	slot := byte('D')
	if withQueen {
		slot = 'Q'
	}
	b := []byte(DefaultSetup)
	b[queenFile] = slot
	return string(b)
}

// NewBoardFromPattern places both sides according to pattern.
func NewBoardFromPattern(pattern string, variant Variant) (*Board, error) {
	lines := strings.Split(strings.TrimRight(pattern, "\n"), "\n")
	if len(lines) == 0 || len(lines) > BoardSize/2 {
		return nil, fmt.Errorf("setup pattern has %d ranks: %w", len(lines), errors.ErrInvalidConfig)
	}

	b := NewBoard(variant)
	for _, colour := range []Colour{White, Black} {
		for row, line := range lines {
			if len(line) > BoardSize {
				return nil, fmt.Errorf("setup rank %d is %d wide: %w", row+1, len(line), errors.ErrInvalidConfig)
			}
			for col := 0; col < len(line); col++ {
				if line[col] == ' ' {
					continue
				}
				kind, ok := KindFromLetter(line[col])
				if !ok {
					return nil, fmt.Errorf("setup letter %q: %w", line[col], errors.ErrInvalidConfig)
				}
				sq := Sq(col, row)
				if colour == Black {
					sq = Sq(BoardSize-1-col, BoardSize-1-row)
				}
				b.AddPiece(kind, colour, sq)
			}
		}
	}
	return b, nil
}
