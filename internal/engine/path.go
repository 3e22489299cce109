package engine

import "github.com/lgbarn/dice-chess-go/internal/chess"

// onPath returns true if sq was already passed in the current activation.
func onPath(visited []chess.Square, sq chess.Square) bool {
	for _, v := range visited {
		if v == sq {
			return true
		}
	}
	return false
}

// pendingStep builds the step context for moving p to target, treating a
// piece that is not mid-activation as freshly armed.
func pendingStep(board *chess.Board, p *chess.Piece, target chess.Square) step {
	s := step{
		piece:    p,
		target:   target,
		occupant: board.Occupant(target, p.ID),
	}
	if p.Open() {
		s.counter = p.Counter
		s.shared = p.Shared
		s.visited = p.Visited
	} else {
		s.counter = p.Budget()
		s.visited = []chess.Square{p.Location}
	}
	return s
}

// stepNumber returns the 1-based index of p's next step in its activation.
func stepNumber(p *chess.Piece) int {
	if p.Open() {
		return p.Start - p.Counter + 1
	}
	return 1
}
