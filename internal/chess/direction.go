package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// Direction is a step direction relative to a piece's own facing.
// Forward always points toward the opponent's home rank.
type Direction int

const (
	None Direction = iota
	Forward
	ForwardRight
	Right
	BackwardRight
	Backward
	BackwardLeft
	Left
	ForwardLeft
)

// Directions lists the eight step directions in clockwise order.
var Directions = []Direction{
	Forward, ForwardRight, Right, BackwardRight,
	Backward, BackwardLeft, Left, ForwardLeft,
}

// StraightDirections lists the four orthogonal directions.
var StraightDirections = []Direction{Forward, Right, Backward, Left}

var directionNames = []string{
	"NONE", "FORWARD", "FORWARD_RIGHT", "RIGHT", "BACKWARD_RIGHT",
	"BACKWARD", "BACKWARD_LEFT", "LEFT", "FORWARD_LEFT",
}

// whiteDeltas holds the unit step for each direction from White's side.
var whiteDeltas = [][2]int{
	{0, 0},
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// String returns the action name of a direction, e.g. "FORWARD_LEFT".
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "UNKNOWN"
}

// Straight returns true for the four orthogonal directions.
func (d Direction) Straight() bool {
	return d == Forward || d == Right || d == Backward || d == Left
}

// Delta returns the board offset of one step in direction d for colour.
// Black's deltas are White's rotated by 180 degrees.
func (d Direction) Delta(colour Colour) (int, int) {
	if d < 0 || int(d) >= len(whiteDeltas) {
		return 0, 0
	}
	off := ColourOffset(colour)
	return whiteDeltas[d][0] * off, whiteDeltas[d][1] * off
}

// DirectionForDelta returns the direction whose step for colour is (dx, dy).
// A zero delta maps to None.
func DirectionForDelta(dx, dy int, colour Colour) (Direction, error) {
	if dx == 0 && dy == 0 {
		return None, nil
	}
	off := ColourOffset(colour)
	dx, dy = dx*off, dy*off
	for _, d := range Directions {
		if whiteDeltas[d][0] == dx && whiteDeltas[d][1] == dy {
			return d, nil
		}
	}
	return None, fmt.Errorf("delta (%d,%d): %w", dx*off, dy*off, errors.ErrNotASingleStep)
}

// ParseDirection parses an action name such as "forward_left" or "FORWARD-LEFT".
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return None, fmt.Errorf("direction %q: %w", s, errors.ErrInvalidNotation)
}
