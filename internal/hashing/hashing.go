// Package hashing provides position hashing and duplicate detection for
// dice chess boards.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/die"
)

const (
	numColours = 2
	numKinds   = 4
	numSquares = chess.BoardSize * chess.BoardSize
	numFaces   = 6
)

// Zobrist keys. A die's full orientation is identified by the value facing
// up and the value facing the +rank edge.
var (
	pieceKeys   [numColours][numKinds][numSquares][numFaces][numFaces]uint64
	toMoveKeys  [numColours]uint64
	counterKeys [numFaces + 1]uint64
	sharedKey   uint64
)

func init() {
	// Fixed seed so hashes are stable across runs and can be stored.
	rng := rand.New(rand.NewSource(0x5eed_d1ce))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				for up := range pieceKeys[c][k][sq] {
					for north := range pieceKeys[c][k][sq][up] {
						pieceKeys[c][k][sq][up][north] = rng.Uint64()
					}
				}
			}
		}
	}
	for i := range toMoveKeys {
		toMoveKeys[i] = rng.Uint64()
	}
	for i := range counterKeys {
		counterKeys[i] = rng.Uint64()
	}
	sharedKey = rng.Uint64()
}

// GenerateZobristHash hashes the on-board pieces, their orientations and the
// turn state. Parked pieces do not contribute.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, p := range board.Pieces {
		if p.Captured || !p.Location.InBounds() {
			continue
		}
		up, north := faces(p)
		sq := p.Location.Rank*chess.BoardSize + p.Location.File
		hash ^= pieceKeys[p.Colour][p.Kind][sq][up][north]
	}

	prev := board.Last()
	switch {
	case prev == nil:
	case prev.Open():
		// The open piece's square is already hashed; its progress is not.
		hash ^= toMoveKeys[prev.Colour] ^ counterKeys[clampCounter(prev.Counter)]
		if prev.Shared {
			hash ^= sharedKey
		}
	default:
		hash ^= toMoveKeys[prev.Colour.Opposite()]
	}
	return hash
}

// faces returns zero-based indices of the values facing up and toward +rank.
// Kings and Rooks always hash as (0, 0).
func faces(p *chess.Piece) (int, int) {
	if !p.Kind.IsDie() {
		return 0, 0
	}
	up := p.Orientation.Value()
	north, err := die.ValueOf(die.Vector(p.Orientation.Matrix[1]))
	if err != nil || up < 1 {
		return 0, 0
	}
	return up - 1, north - 1
}

func clampCounter(n int) int {
	if n < 0 {
		return 0
	}
	if n > numFaces {
		return numFaces
	}
	return n
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// seen counts sightings per hash
	seen map[uint64]int
	// duplicateCount tracks number of repeated sightings
	duplicateCount int
	// maxCapacity bounds the table size (0 = unlimited)
	maxCapacity int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		seen:        make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records the board's position and returns how many times it
// had been seen before. Once full, new positions are checked but not added.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) int {
	if board == nil {
		return 0
	}
	hash := GenerateZobristHash(board)
	n, ok := d.seen[hash]
	if ok {
		d.duplicateCount++
	} else if d.IsFull() {
		return 0
	}
	d.seen[hash] = n + 1
	return n
}

// DuplicateCount returns the number of repeated sightings.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}

// Reset clears the table.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[uint64]int)
	d.duplicateCount = 0
}
