// Package chess provides the core board, piece and geometry types for dice chess.
package chess

import (
	"fmt"

	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black. Multiplying a White
// delta by it gives the delta for the colour's own facing.
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// ParseColour parses "white"/"black" (any case, or a single letter).
func ParseColour(s string) (Colour, error) {
	switch s {
	case "w", "W", "white", "White", "WHITE":
		return White, nil
	case "b", "B", "black", "Black", "BLACK":
		return Black, nil
	}
	return Black, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}

// MarshalText encodes the colour by name.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any form ParseColour does.
func (c *Colour) UnmarshalText(text []byte) error {
	v, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Kind represents a piece type.
type Kind int

const (
	King Kind = iota
	Rook
	Dice
	Queen
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"King", "Rook", "Dice", "Queen"}
	if int(k) < len(names) && k >= 0 {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'K', 'R', 'D', 'Q'}
	if int(k) < len(letters) && k >= 0 {
		return letters[k]
	}
	return '?'
}

// IsDie returns true for the kinds whose value comes from a die orientation.
func (k Kind) IsDie() bool {
	return k == Dice || k == Queen
}

// KindFromLetter converts a setup letter to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'R', 'r':
		return Rook, true
	case 'D', 'd':
		return Dice, true
	case 'Q', 'q':
		return Queen, true
	default:
		return 0, false
	}
}

// FlipMode selects what happens to the shown value when a die is flipped
// at the end of an activation.
type FlipMode int

const (
	// FlipRecompute reads the value from the flipped orientation (7 - value).
	FlipRecompute FlipMode = iota
	// FlipPreserve keeps the value the die showed before the flip.
	FlipPreserve
)

// String returns the config name of a flip mode.
func (m FlipMode) String() string {
	if m == FlipPreserve {
		return "preserve"
	}
	return "recompute"
}

// MarshalText encodes the mode by its config name.
func (m FlipMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses "recompute" or "preserve".
func (m *FlipMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "recompute":
		*m = FlipRecompute
	case "preserve":
		*m = FlipPreserve
	default:
		return fmt.Errorf("flip mode %q: %w", text, errors.ErrInvalidConfig)
	}
	return nil
}

// Variant holds the game variations that change the rules.
type Variant struct {
	// WithQueen puts a Queen instead of a plain die next to the king.
	WithQueen bool `json:"with_queen"`

	// Flip turns a die over when it ends an activation showing the
	// value it started with.
	Flip bool `json:"flip"`

	// FlipValue decides whether the shown value follows the flip.
	FlipValue FlipMode `json:"flip_value"`
}

// DefaultVariant returns the variant used when nothing is configured.
func DefaultVariant() Variant {
	return Variant{WithQueen: true}
}

// Constants for board dimensions and holding ranks.
const (
	BoardSize = 8

	FileBase = 'A'
	RankBase = '1'

	// Captured White pieces park behind rank 1, Black ones behind rank 8.
	WhiteHoldingRank = -2
	BlackHoldingRank = BoardSize + 1
)

// HoldingRank returns the off-board rank where captured pieces of colour park.
func HoldingRank(colour Colour) int {
	if colour == White {
		return WhiteHoldingRank
	}
	return BlackHoldingRank
}

// HomeRank returns the back rank index of colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}
