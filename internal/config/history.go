package config

import (
	"fmt"

	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// HistoryConfig holds settings for undo/redo checkpoints.
type HistoryConfig struct {
	// Limit caps the number of undo steps kept (0 = unlimited)
	Limit int `env:"DICECHESS_UNDO_LIMIT"`

	// DBPath, when set, persists every checkpoint to a SQLite database
	DBPath string `env:"DICECHESS_DB"`
}

// NewHistoryConfig creates a HistoryConfig with default values.
func NewHistoryConfig() *HistoryConfig {
	return &HistoryConfig{}
}

// Validate checks that the history configuration is valid.
func (h *HistoryConfig) Validate() error {
	if h.Limit < 0 {
		return fmt.Errorf("undo limit %d: %w", h.Limit, errors.ErrInvalidConfig)
	}
	return nil
}
