package engine

import "github.com/lgbarn/dice-chess-go/internal/chess"

// NewGame creates a board with both sides in the starting pattern for variant.
func NewGame(variant chess.Variant) (*chess.Board, error) {
	return chess.NewBoardFromPattern(chess.PatternFor(variant.WithQueen), variant)
}

// Score holds the summed pip values of each side's on-board dice.
type Score struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// For returns the two sums ordered from mine's point of view.
func (s Score) For(mine chess.Colour) (own, opponent int) {
	if mine == chess.White {
		return s.White, s.Black
	}
	return s.Black, s.White
}

// ScoreBoard sums the values of the on-board Dice and Queens per colour.
func ScoreBoard(board *chess.Board) Score {
	var s Score
	for _, p := range board.Pieces {
		if p.Captured || !p.Kind.IsDie() {
			continue
		}
		if p.Colour == chess.White {
			s.White += p.Value
		} else {
			s.Black += p.Value
		}
	}
	return s
}

// tieBreakFiles lists White's home-rank files from the centre outward.
// Each is compared with Black's mirrored file 7-f.
var tieBreakFiles = []int{3, 4, 2, 5, 1, 6, 0, 7}

// DetermineStartingColor returns the colour that moves first: the side with
// the larger dice total. On a tie the home ranks are compared file by file
// from the centre outward, mirrored between the sides, and the first
// difference decides. A complete tie goes to White.
func DetermineStartingColor(board *chess.Board) chess.Colour {
	s := ScoreBoard(board)
	if s.White != s.Black {
		if s.White > s.Black {
			return chess.White
		}
		return chess.Black
	}

	for _, f := range tieBreakFiles {
		w := homeValue(board, chess.White, f)
		b := homeValue(board, chess.Black, chess.BoardSize-1-f)
		if w != b {
			if w > b {
				return chess.White
			}
			return chess.Black
		}
	}
	return chess.White
}

// homeValue returns the value of the piece on colour's home rank at file,
// counting an empty square as 1.
func homeValue(board *chess.Board, colour chess.Colour, file int) int {
	p := board.At(chess.Sq(file, chess.HomeRank(colour)))
	if p == nil {
		return 1
	}
	return p.Value
}

// Begin determines the starting colour and points the turn gate at a piece
// of the other side, so only the starting colour may move next.
func Begin(board *chess.Board) chess.Colour {
	start := DetermineStartingColor(board)
	board.LastActivated = chess.NoPiece
	if others := board.Active(start.Opposite()); len(others) > 0 {
		board.LastActivated = others[0].ID
	}
	return start
}

// ToMove returns the colour the turn gate currently admits and whether an
// activation is open. With no previous step either colour may move and ok
// is false.
func ToMove(board *chess.Board) (colour chess.Colour, open bool, ok bool) {
	prev := board.Last()
	if prev == nil {
		return chess.White, false, false
	}
	if prev.Open() {
		return prev.Colour, true, true
	}
	return prev.Colour.Opposite(), false, true
}
