// Package config provides configuration for the dice chess command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/dice-chess-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // starting colour, exported chains, result
	Verbose = 2 // every applied chain is logged
)

// Config holds all program configuration.
// Sub-configs group related settings; the writers are set by the command
// and never come from the environment.
type Config struct {
	Verbosity int `env:"DICECHESS_VERBOSITY"`

	// ScriptFile is the chain script to replay ("" reads stdin).
	ScriptFile string `env:"DICECHESS_SCRIPT"`

	// Game holds the variant, seed and perspective.
	Game GameConfig

	// Output controls how results are written.
	Output OutputConfig

	// History controls undo depth and checkpoint persistence.
	History HistoryConfig

	// Output streams
	OutputFile io.Writer `env:"-"`
	LogFile    io.Writer `env:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Game:       *NewGameConfig(),
		Output:     *NewOutputConfig(),
		History:    *NewHistoryConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w",
			c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.History.Validate()
}
