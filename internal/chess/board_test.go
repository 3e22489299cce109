package chess

import (
	"errors"
	"testing"

	dcerrors "github.com/lgbarn/dice-chess-go/internal/errors"
)

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			sq := Sq(file, rank)
			got, err := ParseSquare(sq.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", sq.String(), err)
			}
			if got != sq {
				t.Errorf("ParseSquare(%q) = %v, want %v", sq.String(), got, sq)
			}
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		token   string
		want    Square
		wantErr bool
	}{
		{"A1", Sq(0, 0), false},
		{"H8", Sq(7, 7), false},
		{"e4", Sq(4, 3), false},
		{"I1", Square{}, true},
		{"A9", Square{}, true},
		{"A0", Square{}, true},
		{"1A", Square{}, true},
		{"A", Square{}, true},
		{"A10", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseSquare(tt.token)
			if tt.wantErr {
				if !errors.Is(err, dcerrors.ErrInvalidNotation) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidNotation", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestSquareInBounds(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(-1, 0), false},
		{Sq(0, 8), false},
		{Sq(3, WhiteHoldingRank), false},
		{Sq(3, BlackHoldingRank), false},
	}
	for _, tt := range tests {
		if got := tt.sq.InBounds(); got != tt.want {
			t.Errorf("%v.InBounds() = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir    Direction
		colour Colour
		dx, dy int
	}{
		{Forward, White, 0, 1},
		{Forward, Black, 0, -1},
		{Right, White, 1, 0},
		{Right, Black, -1, 0},
		{ForwardLeft, White, -1, 1},
		{BackwardRight, Black, -1, 1},
		{None, White, 0, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta(tt.colour)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta(%v) = (%d,%d), want (%d,%d)", tt.dir, tt.colour, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestDirectionForDeltaInverse(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for _, dir := range append([]Direction{None}, Directions...) {
			dx, dy := dir.Delta(colour)
			got, err := DirectionForDelta(dx, dy, colour)
			if err != nil {
				t.Fatalf("DirectionForDelta(%d,%d,%v) error: %v", dx, dy, colour, err)
			}
			if got != dir {
				t.Errorf("DirectionForDelta(%v.Delta(%v)) = %v", dir, colour, got)
			}
		}
	}
}

func TestDirectionForDelta_NotASingleStep(t *testing.T) {
	for _, d := range [][2]int{{0, 2}, {2, 1}, {-3, 0}, {1, -2}} {
		_, err := DirectionForDelta(d[0], d[1], White)
		if !errors.Is(err, dcerrors.ErrNotASingleStep) {
			t.Errorf("DirectionForDelta(%d,%d) error = %v, want ErrNotASingleStep", d[0], d[1], err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), got, err)
		}
	}
	if got, err := ParseDirection("forward-left"); err != nil || got != ForwardLeft {
		t.Errorf("ParseDirection(forward-left) = %v, %v", got, err)
	}
	if _, err := ParseDirection("up"); !errors.Is(err, dcerrors.ErrInvalidNotation) {
		t.Errorf("ParseDirection(up) error = %v, want ErrInvalidNotation", err)
	}
}

func TestNewBoardFromPattern(t *testing.T) {
	b, err := NewBoardFromPattern(PatternFor(true), DefaultVariant())
	if err != nil {
		t.Fatalf("NewBoardFromPattern() error: %v", err)
	}

	if got := len(b.Pieces); got != 20 {
		t.Errorf("len(Pieces) = %d, want 20", got)
	}

	tests := []struct {
		square string
		kind   Kind
		colour Colour
	}{
		{"A1", Dice, White},
		{"D1", King, White},
		{"E1", Queen, White},
		{"D2", Rook, White},
		{"E2", Rook, White},
		{"E8", King, Black},
		{"D8", Queen, Black},
		{"D7", Rook, Black},
		{"H8", Dice, Black},
	}
	for _, tt := range tests {
		p := b.At(MustParseSquare(tt.square))
		if p == nil {
			t.Errorf("At(%s) = nil, want %v %v", tt.square, tt.colour, tt.kind)
			continue
		}
		if p.Kind != tt.kind || p.Colour != tt.colour {
			t.Errorf("At(%s) = %s, want %v %v", tt.square, p.Label(), tt.colour, tt.kind)
		}
	}

	for _, p := range b.Pieces {
		if p.Value != 1 || p.Start != p.Value || p.Counter != p.Value {
			t.Errorf("%s at %v: value/start/counter = %d/%d/%d, want 1/1/1",
				p.Label(), p.Location, p.Value, p.Start, p.Counter)
		}
	}
	if b.LastActivated != NoPiece {
		t.Errorf("LastActivated = %d, want NoPiece", b.LastActivated)
	}
}

func TestPatternFor_WithoutQueen(t *testing.T) {
	b, err := NewBoardFromPattern(PatternFor(false), Variant{})
	if err != nil {
		t.Fatalf("NewBoardFromPattern() error: %v", err)
	}
	for _, p := range b.Pieces {
		if p.Kind == Queen {
			t.Errorf("found %s at %v in a no-queen setup", p.Label(), p.Location)
		}
	}
}

func TestNewBoardFromPattern_Invalid(t *testing.T) {
	for _, pattern := range []string{"DDDKXDDD\n", "DDDDKDDDD\n"} {
		if _, err := NewBoardFromPattern(pattern, Variant{}); !errors.Is(err, dcerrors.ErrInvalidConfig) {
			t.Errorf("NewBoardFromPattern(%q) error = %v, want ErrInvalidConfig", pattern, err)
		}
	}
}

func TestPark_FirstFreeOffset(t *testing.T) {
	b := NewBoard(Variant{})
	a := b.AddPiece(Dice, Black, Sq(0, 0))
	c := b.AddPiece(Dice, Black, Sq(1, 0))
	w := b.AddPiece(Rook, White, Sq(2, 0))

	b.Park(a)
	b.Park(c)
	b.Park(w)

	if a.Location != Sq(0, BlackHoldingRank) {
		t.Errorf("first parked = %v, want file 0 of holding rank", a.Location)
	}
	if c.Location != Sq(1, BlackHoldingRank) {
		t.Errorf("second parked = %v, want file 1 of holding rank", c.Location)
	}
	if w.Location != Sq(0, WhiteHoldingRank) {
		t.Errorf("white parked = %v, want file 0 of white holding rank", w.Location)
	}
	if !a.Captured || b.At(Sq(0, 0)) != nil {
		t.Error("parked piece is still on the board")
	}
}

func TestSaveRestoreState_IsDeep(t *testing.T) {
	b := NewBoard(DefaultVariant())
	p := b.AddPiece(Dice, White, Sq(0, 0))
	p.Arm()

	saved := b.SaveState()

	p.Location = Sq(0, 1)
	p.Visited = append(p.Visited, p.Location)
	p.Counter = 0
	b.LastActivated = p.ID

	b.RestoreState(saved)
	got := b.Piece(p.ID)
	if got.Location != Sq(0, 0) || got.Counter != 1 || len(got.Visited) != 1 {
		t.Errorf("restored piece = %+v, want original state", got)
	}
	if b.LastActivated != NoPiece {
		t.Errorf("restored LastActivated = %d, want NoPiece", b.LastActivated)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	b := NewBoard(Variant{})
	b.AddPiece(King, White, Sq(3, 0))

	c := b.Clone()
	c.Pieces[0].Location = Sq(3, 1)

	if b.Pieces[0].Location != Sq(3, 0) {
		t.Error("changing the clone moved the original piece")
	}
}
