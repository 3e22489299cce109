package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/engine"
	"github.com/lgbarn/dice-chess-go/internal/hashing"
	"github.com/lgbarn/dice-chess-go/internal/history"
	"github.com/lgbarn/dice-chess-go/internal/notation"
	"github.com/lgbarn/dice-chess-go/internal/testutil"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenTwiceAppliesMigrationsOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "checkpoints.db")
	for i := 0; i < 2; i++ {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("open store (%d): %v", i, err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close store (%d): %v", i, err)
		}
	}
}

func TestAppendLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	board := newBoard(t)
	now := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)

	first := history.Record{
		GameID:    "game-1",
		Ply:       0,
		Hash:      hashing.GenerateZobristHash(board),
		State:     board.SaveState(),
		CreatedAt: now,
	}
	if err := store.Append(ctx, first); err != nil {
		t.Fatalf("append ply 0: %v", err)
	}

	outs, err := notation.ApplyChain(board, testutil.Squares(t, "D2", "D3"))
	if err != nil {
		t.Fatalf("apply chain: %v", err)
	}
	second := history.Record{
		GameID:    "game-1",
		Ply:       1,
		Chain:     "D2D3",
		Hash:      hashing.GenerateZobristHash(board),
		State:     board.SaveState(),
		CreatedAt: now.Add(time.Second),
	}
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("append ply 1: %v", err)
	}

	got, err := store.Load(ctx, "game-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	testutil.AssertEqual(t, got, []history.Record{first, second})
	testutil.AssertTrue(t, outs[0].Completed)

	restored := chess.NewBoardFromState(got[1].State)
	if hashing.GenerateZobristHash(restored) != second.Hash {
		t.Error("restored board hashes differently")
	}
}

func TestAppendRejectsDuplicatePly(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	rec := history.Record{GameID: "game-1", State: newBoard(t).SaveState()}

	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	err := store.Append(ctx, rec)
	if !errors.Is(err, ErrDuplicatePly) {
		t.Fatalf("second append error = %v, want ErrDuplicatePly", err)
	}
}

func TestAppendValidates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, history.Record{GameID: " "}); err == nil {
		t.Error("expected game id error")
	}
	if err := store.Append(ctx, history.Record{GameID: "g", Ply: -1}); err == nil {
		t.Error("expected ply error")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := store.Append(cancelled, history.Record{GameID: "g"}); !errors.Is(err, context.Canceled) {
		t.Errorf("append with cancelled context = %v, want context.Canceled", err)
	}
}

func TestLoadUnknownGame(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	got, err := store.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("records = %d, want 0", len(got))
	}
}

func TestFindByHash(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	board := newBoard(t)
	hash := hashing.GenerateZobristHash(board)

	for _, id := range []string{"b", "a"} {
		if err := store.Append(ctx, history.Record{GameID: id, Hash: hash, State: board.SaveState()}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got, err := store.FindByHash(ctx, hash)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 2 || got[0].GameID != "a" || got[1].GameID != "b" {
		t.Fatalf("FindByHash() = %+v", got)
	}
}

func TestHistoryResumeFromStore(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	board := newBoard(t)

	h := history.New(history.WithStore(store))
	if err := h.Start(ctx, board); err != nil {
		t.Fatalf("start: %v", err)
	}
	h.Checkpoint(board)
	if _, err := notation.ApplyChain(board, testutil.Squares(t, "D2", "D3")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := h.Commit(ctx, board, "D2D3"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	want := board.SaveState()

	resumed := history.New(history.WithStore(store), history.WithGameID(h.GameID()))
	other := newBoard(t)
	if err := resumed.Resume(ctx, other); err != nil {
		t.Fatalf("resume: %v", err)
	}
	testutil.AssertEqual(t, other.SaveState(), want)
	testutil.AssertEqual(t, resumed.Ply(), 1)
	testutil.AssertTrue(t, resumed.CanUndo())
}

func newBoard(t *testing.T) *chess.Board {
	t.Helper()
	board, err := engine.NewGame(chess.DefaultVariant())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	engine.Begin(board)
	return board
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "checkpoints.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
