package engine

import (
	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// step describes one requested single-square move, evaluated as if the
// piece were about to take it.
type step struct {
	piece    *chess.Piece
	target   chess.Square
	occupant *chess.Piece // nil for an empty target
	counter  int          // steps left in the activation, including this one
	shared   bool
	visited  []chess.Square
}

// finalStep returns true if this step ends the activation.
func (s step) finalStep() bool {
	return s.counter == 1
}

// kindRule is the legality table entry for one piece kind.
type kindRule struct {
	moves []chess.Direction
	enter func(s step) error
}

// allows returns true if dir is in the kind's move set.
func (r kindRule) allows(dir chess.Direction) bool {
	for _, d := range r.moves {
		if d == dir {
			return true
		}
	}
	return false
}

var kindRules = map[chess.Kind]kindRule{
	chess.King:  {moves: chess.Directions, enter: kingEntry},
	chess.Rook:  {moves: chess.StraightDirections, enter: rookEntry},
	chess.Dice:  {moves: chess.StraightDirections, enter: dieEntry(false)},
	chess.Queen: {moves: chess.StraightDirections, enter: dieEntry(true)},
}

// kingEntry: any empty square, or an enemy that is not a Rook.
func kingEntry(s step) error {
	if s.occupant == nil {
		return nil
	}
	if s.occupant.Colour == s.piece.Colour {
		return errors.ErrBlocked
	}
	if s.occupant.Kind == chess.Rook {
		return errors.ErrCaptureForbidden
	}
	return nil
}

// rookEntry: empty squares only.
func rookEntry(s step) error {
	if s.occupant != nil {
		return errors.ErrBlocked
	}
	return nil
}

// dieEntry returns the Dice rule, or the Queen rule when sharing is set.
// A Queen may pass over one ally per activation while steps remain and may
// capture on any step; a plain die captures only on its final step.
func dieEntry(sharing bool) func(s step) error {
	return func(s step) error {
		if s.occupant == nil {
			if onPath(s.visited, s.target) {
				return errors.ErrPathRevisited
			}
			return nil
		}
		if s.occupant.Colour == s.piece.Colour {
			if sharing && !s.finalStep() && !s.shared {
				return nil
			}
			return errors.ErrBlocked
		}
		if s.occupant.Kind == chess.Rook {
			return errors.ErrCaptureForbidden
		}
		if !sharing && !s.finalStep() {
			return errors.ErrCaptureForbidden
		}
		return nil
	}
}
