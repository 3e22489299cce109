// Package sqlite provides a SQLite-backed checkpoint store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/history"
	"github.com/lgbarn/dice-chess-go/internal/history/sqlite/migrations"
)

// ErrDuplicatePly is returned when a game already has a record at the ply.
var ErrDuplicatePly = errors.New("checkpoint already exists")

// Store persists checkpoints in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite checkpoint store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Concurrent replays share one connection.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Append inserts one checkpoint record.
func (s *Store) Append(ctx context.Context, rec history.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	gameID := strings.TrimSpace(rec.GameID)
	if gameID == "" {
		return fmt.Errorf("game id is required")
	}
	if rec.Ply < 0 {
		return fmt.Errorf("ply must not be negative")
	}
	state, err := json.Marshal(rec.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO checkpoints (
		   game_id,
		   ply,
		   chain,
		   hash,
		   state_json,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		gameID,
		rec.Ply,
		rec.Chain,
		formatHash(rec.Hash),
		state,
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("game %s ply %d: %w", gameID, rec.Ply, ErrDuplicatePly)
		}
		return fmt.Errorf("insert checkpoint: %w", err)
	}
	return nil
}

// Load returns every record of gameID in ply order.
func (s *Store) Load(ctx context.Context, gameID string) ([]history.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT game_id, ply, chain, hash, state_json, created_at
		   FROM checkpoints
		  WHERE game_id = ?
		  ORDER BY ply`,
		strings.TrimSpace(gameID),
	)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}
	defer rows.Close()

	var recs []history.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkpoints: %w", err)
	}
	return recs, nil
}

// FindByHash returns the game ids and plies at which a position was stored.
func (s *Store) FindByHash(ctx context.Context, hash uint64) ([]history.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT game_id, ply, chain, hash, state_json, created_at
		   FROM checkpoints
		  WHERE hash = ?
		  ORDER BY game_id, ply`,
		formatHash(hash),
	)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints by hash: %w", err)
	}
	defer rows.Close()

	var recs []history.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkpoints: %w", err)
	}
	return recs, nil
}

func scanRecord(rows *sql.Rows) (history.Record, error) {
	var (
		rec       history.Record
		hash      string
		state     []byte
		createdAt int64
	)
	if err := rows.Scan(&rec.GameID, &rec.Ply, &rec.Chain, &hash, &state, &createdAt); err != nil {
		return history.Record{}, fmt.Errorf("scan checkpoint: %w", err)
	}
	h, err := strconv.ParseUint(hash, 16, 64)
	if err != nil {
		return history.Record{}, fmt.Errorf("decode hash %q: %w", hash, err)
	}
	rec.Hash = h
	var bs chess.BoardState
	if err := json.Unmarshal(state, &bs); err != nil {
		return history.Record{}, fmt.Errorf("decode state: %w", err)
	}
	rec.State = bs
	rec.CreatedAt = fromMillis(createdAt)
	return rec, nil
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ history.Store = (*Store)(nil)
