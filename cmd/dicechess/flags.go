// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/dice-chess-go/internal/config"
)

var (
	// Game options
	seed     = flag.Int64("seed", 0, "Seed for the opening roll (0 = random)")
	queen    = flag.Bool("queen", true, "Place a Queen next to each king")
	flip     = flag.Bool("flip", false, "Flip a die that ends showing its starting value")
	flipMode = flag.String("flipmode", "recompute", "Value after a flip: recompute or preserve")
	mine     = flag.String("mine", "white", "Local side, listed first in scores")
	resume   = flag.String("resume", "", "Resume a stored game by id (needs -db)")

	// Input/output options
	scriptFile = flag.String("i", "", "Chain script to replay (default: stdin)")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	jsonOutput = flag.Bool("J", false, "Output positions in JSON format")
	showBoard  = flag.Bool("board", false, "Print the board after every chain")
	noColor    = flag.Bool("nocolor", false, "Disable coloured status lines")

	// History options
	dbPath    = flag.String("db", "", "SQLite database for stored checkpoints")
	undoLimit = flag.Int("undo-limit", 0, "Maximum undo depth (0 = unlimited)")

	// Batch options
	workers = flag.Int("workers", 0, "Number of scripts replayed at once (0 = one per CPU)")

	// General options
	verbosity = flag.Int("v", config.Normal, "Verbosity: 0 quiet, 1 normal, 2 verbose")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags copies every flag given on the command line into cfg.
// Flags left at their default do not override the environment.
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err == nil {
			err = applyFlag(cfg, f.Name)
		}
	})
	return err
}

// applyFlag copies the value of the named flag into cfg.
func applyFlag(cfg *config.Config, name string) error {
	switch name {
	case "seed":
		cfg.Game.Seed = *seed
	case "queen":
		cfg.Game.WithQueen = *queen
	case "flip":
		cfg.Game.Flip = *flip
	case "flipmode":
		return cfg.Game.FlipMode.UnmarshalText([]byte(*flipMode))
	case "mine":
		return cfg.Game.Mine.UnmarshalText([]byte(*mine))
	case "i":
		cfg.ScriptFile = *scriptFile
	case "J":
		cfg.Output.JSONFormat = *jsonOutput
	case "board":
		cfg.Output.ShowBoard = *showBoard
	case "nocolor":
		cfg.Output.NoColor = *noColor
	case "db":
		cfg.History.DBPath = *dbPath
	case "undo-limit":
		cfg.History.Limit = *undoLimit
	case "v":
		cfg.Verbosity = *verbosity
	case "s":
		if *quiet {
			cfg.Verbosity = config.Quiet
		}
	}
	return nil
}
