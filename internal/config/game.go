package config

import (
	"fmt"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// GameConfig holds the rule variant and how the opening roll is made.
type GameConfig struct {
	// WithQueen places a Queen next to each king
	WithQueen bool `env:"DICECHESS_QUEEN"`

	// Flip turns a die over when it ends showing its starting value
	Flip bool `env:"DICECHESS_FLIP"`

	// FlipMode is "recompute" or "preserve"
	FlipMode chess.FlipMode `env:"DICECHESS_FLIP_MODE"`

	// Seed for the opening roll; 0 draws a fresh one
	Seed int64 `env:"DICECHESS_SEED"`

	// Mine is the local side, used to order scores
	Mine chess.Colour `env:"DICECHESS_MINE"`
}

// NewGameConfig creates a GameConfig with the default variant.
func NewGameConfig() *GameConfig {
	v := chess.DefaultVariant()
	return &GameConfig{
		WithQueen: v.WithQueen,
		Flip:      v.Flip,
		FlipMode:  v.FlipValue,
		Mine:      chess.White,
	}
}

// Variant returns the rule variant the settings describe.
func (g *GameConfig) Variant() chess.Variant {
	return chess.Variant{
		WithQueen: g.WithQueen,
		Flip:      g.Flip,
		FlipValue: g.FlipMode,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.FlipMode != chess.FlipRecompute && g.FlipMode != chess.FlipPreserve {
		return fmt.Errorf("flip mode %d: %w", g.FlipMode, errors.ErrInvalidConfig)
	}
	if g.Mine != chess.White && g.Mine != chess.Black {
		return fmt.Errorf("colour %d: %w", g.Mine, errors.ErrInvalidConfig)
	}
	return nil
}
