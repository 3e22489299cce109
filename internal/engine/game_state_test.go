package engine

import (
	"testing"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/testutil"
)

func TestNewGame(t *testing.T) {
	b, err := NewGame(chess.DefaultVariant())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(b.Pieces), 20)
	testutil.AssertEqual(t, b.LastActivated, chess.NoPiece)

	q := b.At(chess.Sq(4, 0))
	if q == nil || q.Kind != chess.Queen {
		t.Fatalf("E1 = %v, want White Queen", q)
	}

	b, err = NewGame(chess.Variant{})
	testutil.AssertNoError(t, err)
	for _, p := range b.Pieces {
		if p.Kind == chess.Queen {
			t.Errorf("queen at %s in a variant without queens", p.Location)
		}
	}
}

func TestScoreBoard(t *testing.T) {
	b := testutil.EmptyBoard(chess.Variant{})
	testutil.PlaceDie(t, b, "A1", chess.White, chess.Dice, 6)
	testutil.PlaceDie(t, b, "B1", chess.White, chess.Queen, 2)
	testutil.Place(t, b, "C1", chess.White, chess.King)
	testutil.PlaceDie(t, b, "A8", chess.Black, chess.Dice, 3)
	gone := testutil.PlaceDie(t, b, "B8", chess.Black, chess.Dice, 5)
	b.Park(gone)

	s := ScoreBoard(b)
	testutil.AssertEqual(t, s, Score{White: 8, Black: 3})

	own, opp := s.For(chess.Black)
	testutil.AssertEqual(t, own, 3)
	testutil.AssertEqual(t, opp, 8)
	own, opp = s.For(chess.White)
	testutil.AssertEqual(t, own, 8)
	testutil.AssertEqual(t, opp, 3)
}

func TestDetermineStartingColor(t *testing.T) {
	type placement struct {
		square string
		colour chess.Colour
		value  int
	}
	tests := []struct {
		name   string
		pieces []placement
		want   chess.Colour
	}{
		{"empty board", nil, chess.White},
		{"white higher", []placement{{"A3", chess.White, 6}, {"A6", chess.Black, 3}}, chess.White},
		{"black higher", []placement{{"A3", chess.White, 2}, {"A6", chess.Black, 5}}, chess.Black},
		{
			// D1 against E8 first: White 2, Black empty (1).
			"tie centre file",
			[]placement{{"D1", chess.White, 2}, {"B8", chess.Black, 2}},
			chess.White,
		},
		{
			// D1 empty (1) against E8 showing 2.
			"tie mirrored file",
			[]placement{{"A1", chess.White, 2}, {"E8", chess.Black, 2}},
			chess.Black,
		},
		{
			// D1/E8 equal, then E1 against D8.
			"tie second file",
			[]placement{{"D1", chess.White, 3}, {"E1", chess.White, 1}, {"A3", chess.White, 1}, {"E8", chess.Black, 3}, {"D8", chess.Black, 2}},
			chess.Black,
		},
		{
			"full mirror tie",
			[]placement{{"C1", chess.White, 4}, {"F8", chess.Black, 4}},
			chess.White,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.EmptyBoard(chess.Variant{})
			for _, pl := range tt.pieces {
				testutil.PlaceDie(t, b, pl.square, pl.colour, chess.Dice, pl.value)
			}
			if got := DetermineStartingColor(b); got != tt.want {
				t.Errorf("DetermineStartingColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBegin_GatesTheOtherSide(t *testing.T) {
	b := testutil.EmptyBoard(chess.Variant{})
	wd := testutil.PlaceDie(t, b, "A3", chess.White, chess.Dice, 2)
	bd := testutil.PlaceDie(t, b, "A6", chess.Black, chess.Dice, 5)

	start := Begin(b)
	testutil.AssertEqual(t, start, chess.Black)
	testutil.AssertEqual(t, b.LastActivated, wd.ID)

	colour, open, ok := ToMove(b)
	testutil.AssertTrue(t, ok)
	testutil.AssertFalse(t, open)
	testutil.AssertEqual(t, colour, chess.Black)

	testutil.AssertTrue(t, CanActivate(b, wd) != nil, "white must wait")
	testutil.AssertNoError(t, CanActivate(b, bd))
}

func TestToMove(t *testing.T) {
	b := testutil.EmptyBoard(chess.Variant{})
	d := testutil.PlaceDie(t, b, "A1", chess.White, chess.Dice, 3)

	_, _, ok := ToMove(b)
	testutil.AssertFalse(t, ok, "no step taken yet")

	_, err := Activate(b, d.ID, chess.Forward)
	testutil.AssertNoError(t, err)
	colour, open, ok := ToMove(b)
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, open)
	testutil.AssertEqual(t, colour, chess.White)
}

func TestRandomize_Deterministic(t *testing.T) {
	roll := func(seed int64) []chess.Piece {
		t.Helper()
		b, err := NewGame(chess.DefaultVariant())
		testutil.AssertNoError(t, err)
		rng, used, err := NewRand(seed)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, used, seed)
		start, err := Randomize(b, rng)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, start, DetermineStartingColor(b))
		return b.SaveState().Pieces
	}

	first := roll(42)
	testutil.AssertEqual(t, roll(42), first)

	for _, p := range first {
		if p.Value < 1 || p.Value > 6 {
			t.Errorf("%s at %s shows %d", p.Kind, p.Location, p.Value)
		}
		testutil.AssertEqual(t, p.Start, p.Value)
		testutil.AssertEqual(t, p.Counter, p.Value)
		if !p.Kind.IsDie() {
			testutil.AssertEqual(t, p.Value, 1)
		}
	}
}

func TestNewRand_ZeroSeedDrawsOne(t *testing.T) {
	rng, _, err := NewRand(0)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rng != nil)
}
