package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/die"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a generator for seed. A zero seed draws a fresh one; the
// seed actually used is returned so a game can be replayed.
func NewRand(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

// Randomize rolls every on-board die to a random face and yaw, then calls
// Begin. It is deterministic for a given generator state.
func Randomize(board *chess.Board, rng *rand.Rand) (chess.Colour, error) {
	for _, p := range board.Pieces {
		if p.Captured || !p.Kind.IsDie() {
			continue
		}
		o, err := die.FromValue(rng.Intn(6) + 1)
		if err != nil {
			return chess.White, err
		}
		p.Orientation = o.Yaw(rng.Intn(4))
		p.Value = p.Orientation.Value()
		p.Start = p.Value
		p.Counter = p.Value
		p.Shared = false
		p.Visited = nil
	}
	return Begin(board), nil
}
