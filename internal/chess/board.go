package chess

import "github.com/lgbarn/dice-chess-go/internal/die"

// Board holds every piece of a game plus the turn pointer.
type Board struct {
	// All pieces, on the board and captured. Pieces[i].ID == i.
	Pieces []*Piece

	// The piece that made the most recent step, or NoPiece.
	LastActivated PieceID

	// Rule variations in force for this game.
	Variant Variant

	// Set once a king has been captured.
	Over   bool
	Winner Colour
}

// NewBoard creates a new empty board.
func NewBoard(variant Variant) *Board {
	return &Board{
		LastActivated: NoPiece,
		Variant:       variant,
	}
}

// AddPiece places a new piece on the board and returns it.
// Dice kinds start with the 1 face up.
func (b *Board) AddPiece(kind Kind, colour Colour, sq Square) *Piece {
	return b.AddDie(kind, colour, sq, die.Identity())
}

// AddDie places a new piece with the given orientation. The orientation is
// ignored for King and Rook.
func (b *Board) AddDie(kind Kind, colour Colour, sq Square, o die.Orientation) *Piece {
	p := &Piece{
		ID:       PieceID(len(b.Pieces)),
		Kind:     kind,
		Colour:   colour,
		Location: sq,
		Value:    1,
	}
	if kind.IsDie() {
		p.Orientation = o
		p.Value = o.Value()
	}
	p.Start = p.Value
	p.Counter = p.Value
	b.Pieces = append(b.Pieces, p)
	return p
}

// Piece returns the piece with the given id, or nil.
func (b *Board) Piece(id PieceID) *Piece {
	if id < 0 || int(id) >= len(b.Pieces) {
		return nil
	}
	return b.Pieces[id]
}

// Last returns the most recently activated piece, or nil.
func (b *Board) Last() *Piece {
	return b.Piece(b.LastActivated)
}

// Occupant returns the on-board piece at sq other than except, or nil.
func (b *Board) Occupant(sq Square, except PieceID) *Piece {
	if !sq.InBounds() {
		return nil
	}
	for _, p := range b.Pieces {
		if p.Captured || p.ID == except {
			continue
		}
		if p.Location == sq {
			return p
		}
	}
	return nil
}

// At returns the on-board piece at sq, or nil.
func (b *Board) At(sq Square) *Piece {
	return b.Occupant(sq, NoPiece)
}

// Active returns the on-board pieces of colour.
func (b *Board) Active(colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.Pieces {
		if !p.Captured && p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// Park moves p to the first free square of its colour's holding rank and
// marks it captured.
func (b *Board) Park(p *Piece) {
	rank := HoldingRank(p.Colour)
	file := 0
	for {
		taken := false
		for _, other := range b.Pieces {
			if other.ID != p.ID && other.Captured && other.Location == Sq(file, rank) {
				taken = true
				break
			}
		}
		if !taken {
			break
		}
		file++
	}
	p.Location = Sq(file, rank)
	p.Captured = true
	p.Visited = nil
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.Pieces = make([]*Piece, len(b.Pieces))
	for i, p := range b.Pieces {
		c.Pieces[i] = p.clone()
	}
	return &c
}

// BoardState captures all mutable board state for save/restore operations.
// It is the unit of the host-side undo/redo history.
type BoardState struct {
	Pieces        []Piece `json:"pieces"`
	LastActivated PieceID `json:"last_activated"`
	Variant       Variant `json:"variant"`
	Over          bool    `json:"over"`
	Winner        Colour  `json:"winner"`
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	s := BoardState{
		Pieces:        make([]Piece, len(b.Pieces)),
		LastActivated: b.LastActivated,
		Variant:       b.Variant,
		Over:          b.Over,
		Winner:        b.Winner,
	}
	for i, p := range b.Pieces {
		s.Pieces[i] = *p.clone()
	}
	return s
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Pieces = make([]*Piece, len(s.Pieces))
	for i := range s.Pieces {
		b.Pieces[i] = s.Pieces[i].clone()
	}
	b.LastActivated = s.LastActivated
	b.Variant = s.Variant
	b.Over = s.Over
	b.Winner = s.Winner
}

// NewBoardFromState builds a board from a saved state.
func NewBoardFromState(s BoardState) *Board {
	b := &Board{}
	b.RestoreState(s)
	return b
}
