package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dice-chess-go/internal/chess"
)

// Outcome reports what a single accepted step did.
type Outcome struct {
	Piece     chess.PieceID   `json:"piece"`
	Kind      chess.Kind      `json:"kind"`
	Colour    chess.Colour    `json:"colour"`
	From      chess.Square    `json:"from"`
	To        chess.Square    `json:"to"`
	Direction chess.Direction `json:"direction"`

	// Value and Counter after the step (and after any flip).
	Value   int `json:"value"`
	Counter int `json:"counter"`

	// Captured is the piece sent to its holding rank, or NoPiece.
	Captured chess.PieceID `json:"captured"`

	// Shared is set when a Queen stepped onto an ally.
	Shared bool `json:"shared"`

	// Completed is set when this step closed the activation.
	Completed bool `json:"completed"`

	// Flipped is set when the die was turned over on completion.
	Flipped bool `json:"flipped"`

	// GameOver is set when the step captured a king.
	GameOver bool         `json:"game_over"`
	Winner   chess.Colour `json:"winner"`
}

// String returns a one-line summary, e.g. "White Dice A1-A2 (3 left)".
func (o Outcome) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s-%s", o.Colour, o.Kind, o.From, o.To)
	if o.Captured != chess.NoPiece {
		sb.WriteString(" captures")
	}
	if o.Shared {
		sb.WriteString(" shares")
	}
	if o.Completed {
		fmt.Fprintf(&sb, " shows %d", o.Value)
	} else {
		fmt.Fprintf(&sb, " (%d left)", o.Counter)
	}
	if o.Flipped {
		sb.WriteString(" flipped")
	}
	if o.GameOver {
		fmt.Fprintf(&sb, ", %s wins", o.Winner)
	}
	return sb.String()
}

// Activate moves piece id one step in dir. The first step of an activation
// arms the piece's counter with its current budget; dice roll over in the
// direction of travel and show a new value after every step. An enemy on the
// target square is parked on its holding rank, and capturing a king ends the
// game. On error the board is left untouched.
func Activate(board *chess.Board, id chess.PieceID, dir chess.Direction) (Outcome, error) {
	target, err := LegalTarget(board, id, dir)
	if err != nil {
		return Outcome{}, err
	}
	p := board.Piece(id)
	from := p.Location

	orientation := p.Orientation
	if p.Kind.IsDie() {
		dx, dy := from.Delta(target)
		orientation, err = orientation.Roll(dx, dy)
		if err != nil {
			return Outcome{}, moveError(p, dir, err)
		}
	}

	occupant := board.Occupant(target, p.ID)
	if !p.Open() {
		p.Arm()
	}

	p.Location = target
	if p.Kind.IsDie() {
		p.Orientation = orientation
		p.Value = orientation.Value()
	}
	p.Counter--
	p.Visited = append(p.Visited, target)

	out := Outcome{
		Piece:     p.ID,
		Kind:      p.Kind,
		Colour:    p.Colour,
		From:      from,
		To:        target,
		Direction: dir,
		Captured:  chess.NoPiece,
	}

	if occupant != nil {
		if occupant.Colour == p.Colour {
			p.Shared = true
			out.Shared = true
		} else {
			board.Park(occupant)
			out.Captured = occupant.ID
			if occupant.Kind == chess.King {
				board.Over = true
				board.Winner = p.Colour
				out.GameOver = true
				out.Winner = p.Colour
			}
		}
	}

	if p.Counter == 0 {
		out.Completed = true
		out.Flipped = flip(board.Variant, p)
	}

	board.LastActivated = p.ID
	out.Value = p.Value
	out.Counter = p.Counter
	return out, nil
}

// flip turns a die over when it ends an activation showing the value it
// started with and the variant asks for it.
func flip(v chess.Variant, p *chess.Piece) bool {
	if !v.Flip || !p.Kind.IsDie() || p.Value != p.Start {
		return false
	}
	p.Orientation = p.Orientation.Flip()
	if v.FlipValue == chess.FlipRecompute {
		p.Value = p.Orientation.Value()
	}
	return true
}
