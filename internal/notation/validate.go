package notation

import (
	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/engine"
	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// ValidateChain checks that squares describe one complete, legal activation
// of the piece standing on squares[0]. Every leg is replayed on a copy of
// board, so the same rules apply as for single steps. board is not modified.
func ValidateChain(board *chess.Board, squares []chess.Square) error {
	_, err := replay(board.Clone(), squares)
	return err
}

// ApplyChain validates squares and then performs the activation on board,
// returning the outcome of every step. On error board is unchanged.
func ApplyChain(board *chess.Board, squares []chess.Square) ([]engine.Outcome, error) {
	if err := ValidateChain(board, squares); err != nil {
		return nil, err
	}
	return replay(board, squares)
}

// CanGo returns true if text parses and validates against board.
func CanGo(board *chess.Board, text string) bool {
	squares, err := ParseChain(text)
	if err != nil {
		return false
	}
	return ValidateChain(board, squares) == nil
}

// replay checks the chain shape and steps the piece along it on board.
func replay(board *chess.Board, squares []chess.Square) ([]engine.Outcome, error) {
	if len(squares) < 2 {
		return nil, &errors.NotationError{Err: errors.ErrChainTooShort, Index: -1}
	}
	if err := checkDuplicates(squares); err != nil {
		return nil, err
	}

	p := board.At(squares[0])
	if p == nil {
		return nil, &errors.NotationError{Err: errors.ErrUnknownPiece, Token: squares[0].String(), Index: 0}
	}
	if want := stepsLeft(p); len(squares)-1 != want {
		return nil, &errors.NotationError{
			Err:   errors.Wrapf(errors.ErrChainLengthMismatch, "%s needs %d steps, chain has %d", p.Label(), want, len(squares)-1),
			Index: -1,
		}
	}

	outcomes := make([]engine.Outcome, 0, len(squares)-1)
	for i := 1; i < len(squares); i++ {
		dx, dy := squares[i-1].Delta(squares[i])
		dir, err := chess.DirectionForDelta(dx, dy, p.Colour)
		if err != nil {
			return nil, &errors.NotationError{Err: err, Token: squares[i].String(), Index: i}
		}
		out, err := engine.Activate(board, p.ID, dir)
		if err != nil {
			return nil, &errors.NotationError{Err: err, Token: squares[i].String(), Index: i}
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// checkDuplicates rejects a chain naming any square twice.
func checkDuplicates(squares []chess.Square) error {
	seen := make(map[chess.Square]bool, len(squares))
	for i, sq := range squares {
		if seen[sq] {
			return &errors.NotationError{Err: errors.ErrDuplicateSquareInChain, Token: sq.String(), Index: i}
		}
		seen[sq] = true
	}
	return nil
}

// stepsLeft is the number of steps a chain starting now must contain:
// the remaining counter mid-activation, otherwise a full budget.
func stepsLeft(p *chess.Piece) int {
	if p.Open() {
		return p.Counter
	}
	return p.Budget()
}
