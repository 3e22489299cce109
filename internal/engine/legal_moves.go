package engine

import "github.com/lgbarn/dice-chess-go/internal/chess"

// LegalDirections returns every direction piece id may step in right now,
// in chess.Directions order. It is used to enable or disable per-direction
// controls.
func LegalDirections(board *chess.Board, id chess.PieceID) []chess.Direction {
	var dirs []chess.Direction
	for _, dir := range chess.Directions {
		if _, err := LegalTarget(board, id, dir); err == nil {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// HasLegalMoves returns true if any on-board piece of colour can step now.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Active(colour) {
		if len(LegalDirections(board, p.ID)) > 0 {
			return true
		}
	}
	return false
}
