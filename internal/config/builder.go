package config

import (
	"io"

	"github.com/lgbarn/dice-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the rule variant.
func (b *ConfigBuilder) WithVariant(v chess.Variant) *ConfigBuilder {
	b.cfg.Game.WithQueen = v.WithQueen
	b.cfg.Game.Flip = v.Flip
	b.cfg.Game.FlipMode = v.FlipValue
	return b
}

// WithSeed sets the seed for the opening roll.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithPerspective sets the local side.
func (b *ConfigBuilder) WithPerspective(mine chess.Colour) *ConfigBuilder {
	b.cfg.Game.Mine = mine
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithShowBoard writes the board after each chain.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithHistoryDB persists checkpoints to the SQLite database at path.
func (b *ConfigBuilder) WithHistoryDB(path string) *ConfigBuilder {
	b.cfg.History.DBPath = path
	return b
}

// WithUndoLimit caps the undo stack.
func (b *ConfigBuilder) WithUndoLimit(n int) *ConfigBuilder {
	b.cfg.History.Limit = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
