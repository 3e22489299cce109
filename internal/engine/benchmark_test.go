package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/dice-chess-go/internal/chess"
)

var benchSeeds = map[string]int64{
	"Seed1":    1,
	"Seed42":   42,
	"Seed1000": 1000,
}

// benchBoard returns an opening board rolled with seed.
func benchBoard(b *testing.B, seed int64) *chess.Board {
	b.Helper()
	board, err := NewGame(chess.DefaultVariant())
	if err != nil {
		b.Fatal(err)
	}
	if _, err := Randomize(board, rand.New(rand.NewSource(seed))); err != nil {
		b.Fatal(err)
	}
	return board
}

func BenchmarkNewGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewGame(chess.DefaultVariant())
	}
}

func BenchmarkRandomize(b *testing.B) {
	board, _ := NewGame(chess.DefaultVariant())
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Randomize(board, rng)
	}
}

func BenchmarkLegalDirections(b *testing.B) {
	for name, seed := range benchSeeds {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, seed)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, p := range board.Pieces {
					LegalDirections(board, p.ID)
				}
			}
		})
	}
}

func BenchmarkHasLegalMoves(b *testing.B) {
	for name, seed := range benchSeeds {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, seed)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White)
				HasLegalMoves(board, chess.Black)
			}
		})
	}
}

func BenchmarkActivate(b *testing.B) {
	cases := []struct {
		name string
		from chess.Square
		dir  chess.Direction
	}{
		{"KingDiagonal", chess.Sq(3, 0), chess.ForwardLeft},
		{"RookForward", chess.Sq(3, 1), chess.Forward},
		{"DieForward", chess.Sq(0, 0), chess.Forward},
	}

	start, _ := NewGame(chess.DefaultVariant())
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			id := start.At(tc.from).ID
			for i := 0; i < b.N; i++ {
				board := start.Clone()
				if _, err := Activate(board, id, tc.dir); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScoreBoard(b *testing.B) {
	board := benchBoard(b, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScoreBoard(board)
	}
}
