// Package engine implements the dice chess rules: per-kind legality, the turn
// gate, activation bookkeeping, capture and game end, starting colour and
// scoring.
//
// The engine is synchronous and keeps no state of its own; every operation
// works in place on the *chess.Board it is given. Callers that share a board
// across goroutines must serialise calls themselves.
package engine

import (
	"fmt"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// CanActivate returns nil if the turn gate lets p take its next step.
//
// Only one activation is ever open. The piece that moved last may continue
// while it is mid-activation; any other piece may start only once that
// activation is complete, and only if it belongs to the other colour.
func CanActivate(board *chess.Board, p *chess.Piece) error {
	prev := board.Last()
	if prev == nil {
		return nil
	}
	if prev.ID == p.ID {
		if prev.Open() {
			return nil
		}
		return fmt.Errorf("%s already moved: %w", p.Label(), errors.ErrTurnGate)
	}
	if prev.Open() {
		return fmt.Errorf("%s is mid-activation: %w", prev.Label(), errors.ErrTurnGate)
	}
	if prev.Colour == p.Colour {
		return fmt.Errorf("%s to move: %w", p.Colour.Opposite(), errors.ErrTurnGate)
	}
	return nil
}

// LegalTarget returns the square piece id would reach by stepping in dir,
// or an error wrapped in *errors.MoveError explaining why it cannot.
// It never modifies the board.
func LegalTarget(board *chess.Board, id chess.PieceID, dir chess.Direction) (chess.Square, error) {
	p, err := lookup(board, id)
	if err != nil {
		return chess.Square{}, err
	}
	if board.Over {
		return chess.Square{}, moveError(p, dir, errors.ErrGameOver)
	}
	if err := CanActivate(board, p); err != nil {
		return chess.Square{}, moveError(p, dir, err)
	}

	rule := kindRules[p.Kind]
	if !rule.allows(dir) {
		return chess.Square{}, moveError(p, dir, errors.ErrNotInMoveSet)
	}

	dx, dy := dir.Delta(p.Colour)
	target := p.Location.Add(dx, dy)
	if !target.InBounds() {
		return chess.Square{}, moveError(p, dir, errors.ErrOutOfBounds)
	}

	s := pendingStep(board, p, target)
	if err := rule.enter(s); err != nil {
		return chess.Square{}, moveError(p, dir, err)
	}
	return target, nil
}

// lookup returns the on-board piece with id.
func lookup(board *chess.Board, id chess.PieceID) (*chess.Piece, error) {
	p := board.Piece(id)
	if p == nil {
		return nil, &errors.MoveError{Err: fmt.Errorf("id %d: %w", id, errors.ErrUnknownPiece)}
	}
	if p.Captured {
		return nil, &errors.MoveError{Piece: p.Label(), Err: errors.ErrPieceCaptured}
	}
	return p, nil
}

// moveError wraps err with the context of p's next step in dir.
func moveError(p *chess.Piece, dir chess.Direction, err error) error {
	return &errors.MoveError{
		Err:       err,
		Piece:     p.Label(),
		From:      p.Location.String(),
		Direction: dir.String(),
		Step:      stepNumber(p),
	}
}
