// Package errors provides sentinel errors and error types for the dice chess engine.
// It defines the rule-violation taxonomy and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rule violations and malformed input.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed algebraic token or chain.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrOutOfBounds indicates a step that would leave the board.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrBlocked indicates the destination is occupied and the move type forbids entry.
	ErrBlocked = errors.New("blocked")

	// ErrCaptureForbidden indicates the occupant cannot be captured by this piece on this step.
	ErrCaptureForbidden = errors.New("capture forbidden")

	// ErrTurnGate indicates the wrong piece or colour was selected for the current activation state.
	ErrTurnGate = errors.New("turn gate failed")

	// ErrPathRevisited indicates a die re-entering a square it already passed in the same activation.
	ErrPathRevisited = errors.New("path revisited")

	// ErrDuplicateSquareInChain indicates a move chain that names the same square twice.
	ErrDuplicateSquareInChain = errors.New("duplicate square in chain")

	// ErrChainLengthMismatch indicates a chain whose length does not match the piece's pip value.
	ErrChainLengthMismatch = errors.New("chain length mismatch")

	// ErrChainTooShort indicates a move chain with fewer than two squares.
	ErrChainTooShort = fmt.Errorf("chain too short: %w", ErrChainLengthMismatch)

	// ErrNotASingleStep indicates a delta that is not one of the eight unit steps.
	ErrNotASingleStep = errors.New("not a single step")

	// ErrNotInMoveSet indicates a direction the piece kind cannot move in.
	ErrNotInMoveSet = errors.New("direction not in move set")

	// ErrUnknownPiece indicates a piece id or square with no piece.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrPieceCaptured indicates an attempt to move a piece parked on a holding rank.
	ErrPieceCaptured = errors.New("piece is captured")

	// ErrGameOver indicates a move after a king has been captured.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoCheckpoint indicates an undo or redo with nothing to restore.
	ErrNoCheckpoint = errors.New("no checkpoint")
)

// MoveError wraps a rule violation with the context of the step that caused it.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err       error  // The underlying error
	Piece     string // Piece label, e.g. "White Dice"
	From      string // Algebraic square the step started from
	Direction string // Requested direction
	Step      int    // 1-based step within the activation (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" {
		parts = append(parts, "at "+e.From)
	}
	if e.Direction != "" {
		parts = append(parts, "moving "+e.Direction)
	}
	if e.Step > 0 {
		parts = append(parts, fmt.Sprintf("step %d", e.Step))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NotationError represents a move-chain error with the offending token.
type NotationError struct {
	Err   error  // The underlying error
	Token string // The token that failed (if applicable)
	Index int    // 0-based token index in the chain (-1 if not applicable)
}

// Error returns a formatted error message with token context.
func (e *NotationError) Error() string {
	var parts []string

	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("token %d", e.Index+1))
	}
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Token))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "notation error"
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It re-exports the standard library helper so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
