// Package history keeps undo/redo checkpoints of a board and, optionally,
// a persistent log of every committed position.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/errors"
	"github.com/lgbarn/dice-chess-go/internal/hashing"
)

// Record is one persisted position of a game.
type Record struct {
	GameID    string
	Ply       int
	Chain     string // chain that produced the position ("" for the start)
	Hash      uint64
	State     chess.BoardState
	CreatedAt time.Time
}

// Store persists records. Implementations must return records of a game
// in ascending ply order.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Load(ctx context.Context, gameID string) ([]Record, error)
}

// Chains committed for undo and redo.
const (
	ChainUndo = "undo"
	ChainRedo = "redo"
)

// History holds the undo and redo stacks for one game.
// It is not safe for concurrent use.
type History struct {
	gameID string
	limit  int
	store  Store
	ply    int

	undo []chess.BoardState
	redo []chess.BoardState
}

// Option configures a History.
type Option func(*History)

// WithLimit caps the undo stack; the oldest checkpoints are dropped first.
func WithLimit(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.limit = n
		}
	}
}

// WithStore persists every committed position to s.
func WithStore(s Store) Option {
	return func(h *History) {
		h.store = s
	}
}

// WithGameID sets the game id instead of generating one.
func WithGameID(id string) Option {
	return func(h *History) {
		if id != "" {
			h.gameID = id
		}
	}
}

// New creates an empty history with a fresh game id.
func New(opts ...Option) *History {
	h := &History{gameID: uuid.NewString()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GameID returns the id positions are stored under.
func (h *History) GameID() string {
	return h.gameID
}

// Ply returns the number of positions committed after the start.
func (h *History) Ply() int {
	return h.ply
}

// Checkpoint saves board so a later Undo can return to it, and clears the
// redo stack.
func (h *History) Checkpoint(board *chess.Board) {
	h.pushUndo(board.SaveState())
	h.redo = h.redo[:0]
}

// Undo restores the most recent checkpoint, keeping the current position
// for Redo.
func (h *History) Undo(board *chess.Board) error {
	if !h.CanUndo() {
		return fmt.Errorf("undo: %w", errors.ErrNoCheckpoint)
	}
	last := len(h.undo) - 1
	h.redo = append(h.redo, board.SaveState())
	board.RestoreState(h.undo[last])
	h.undo = h.undo[:last]
	return nil
}

// Redo reapplies the position most recently undone.
func (h *History) Redo(board *chess.Board) error {
	if !h.CanRedo() {
		return fmt.Errorf("redo: %w", errors.ErrNoCheckpoint)
	}
	last := len(h.redo) - 1
	h.pushUndo(board.SaveState())
	board.RestoreState(h.redo[last])
	h.redo = h.redo[:last]
	return nil
}

// CanUndo returns true if a checkpoint is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if an undone position is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Start persists the opening position as ply 0.
func (h *History) Start(ctx context.Context, board *chess.Board) error {
	h.ply = 0
	return h.persist(ctx, board, "")
}

// Commit persists board as the position reached by chain. Undo and redo
// are committed too, with chain "undo" or "redo", so the stored log always
// ends at the current position.
func (h *History) Commit(ctx context.Context, board *chess.Board, chain string) error {
	h.ply++
	return h.persist(ctx, board, chain)
}

func (h *History) persist(ctx context.Context, board *chess.Board, chain string) error {
	if h.store == nil {
		return nil
	}
	rec := Record{
		GameID:    h.gameID,
		Ply:       h.ply,
		Chain:     chain,
		Hash:      hashing.GenerateZobristHash(board),
		State:     board.SaveState(),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Append(ctx, rec); err != nil {
		return errors.Wrapf(err, "store ply %d", h.ply)
	}
	return nil
}

// Resume loads the stored log of the history's game and restores board to
// its last position. The undo and redo stacks are rebuilt by replaying the
// log: a chain pushes the previous position for undo and clears redo, and
// logged undo and redo records move positions between the two stacks.
func (h *History) Resume(ctx context.Context, board *chess.Board) error {
	if h.store == nil {
		return fmt.Errorf("resume %s: no store: %w", h.gameID, errors.ErrNoCheckpoint)
	}
	recs, err := h.store.Load(ctx, h.gameID)
	if err != nil {
		return errors.Wrapf(err, "resume %s", h.gameID)
	}
	if len(recs) == 0 {
		return fmt.Errorf("resume %s: %w", h.gameID, errors.ErrNoCheckpoint)
	}

	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	current := recs[0].State
	for _, rec := range recs[1:] {
		switch rec.Chain {
		case ChainUndo:
			if n := len(h.undo); n > 0 {
				h.undo = h.undo[:n-1]
			}
			h.redo = append(h.redo, current)
		case ChainRedo:
			if n := len(h.redo); n > 0 {
				h.redo = h.redo[:n-1]
			}
			h.pushUndo(current)
		default:
			h.pushUndo(current)
			h.redo = h.redo[:0]
		}
		current = rec.State
	}
	last := recs[len(recs)-1]
	board.RestoreState(last.State)
	h.ply = last.Ply
	return nil
}

func (h *History) pushUndo(state chess.BoardState) {
	h.undo = append(h.undo, state)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}
