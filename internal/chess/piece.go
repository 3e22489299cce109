package chess

import "github.com/lgbarn/dice-chess-go/internal/die"

// PieceID identifies a piece on a board. IDs are indices into Board.Pieces.
type PieceID int

// NoPiece marks an unset piece reference.
const NoPiece PieceID = -1

// Piece is a single game piece, on the board or parked on a holding rank.
type Piece struct {
	ID       PieceID `json:"id"`
	Kind     Kind    `json:"kind"`
	Colour   Colour  `json:"colour"`
	Location Square  `json:"location"`

	// Orientation is only meaningful for dice kinds.
	Orientation die.Orientation `json:"orientation"`

	// Value is the face-up pip count (fixed 1 for King and Rook).
	Value int `json:"value"`

	// Start is the number of steps allotted to the current activation.
	Start int `json:"start"`

	// Counter is the number of forced steps left in the current activation.
	Counter int `json:"counter"`

	// Shared is set once a Queen has passed over an ally this activation.
	Shared bool `json:"shared"`

	// Captured is set once the piece has been moved to its holding rank.
	Captured bool `json:"captured"`

	// Visited records the squares passed in the current activation,
	// starting with the square it began on.
	Visited []Square `json:"visited,omitempty"`
}

// Label returns a short human label, e.g. "White Dice".
func (p *Piece) Label() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Open returns true while the piece is part way through an activation.
func (p *Piece) Open() bool {
	return p.Counter > 0 && p.Counter < p.Start
}

// Budget returns the number of steps a fresh activation of the piece takes.
func (p *Piece) Budget() int {
	if p.Kind.IsDie() {
		return p.Value
	}
	return 1
}

// Arm resets the activation bookkeeping for a fresh activation.
func (p *Piece) Arm() {
	p.Start = p.Budget()
	p.Counter = p.Start
	p.Shared = false
	p.Visited = append(p.Visited[:0], p.Location)
}

// clone returns a deep copy of the piece.
func (p *Piece) clone() *Piece {
	c := *p
	if p.Visited != nil {
		c.Visited = append([]Square(nil), p.Visited...)
	}
	return &c
}
