// dicechess replays move chains of dice chess games and reports the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/lgbarn/dice-chess-go/internal/config"
	"github.com/lgbarn/dice-chess-go/internal/history"
	"github.com/lgbarn/dice-chess-go/internal/history/sqlite"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dicechess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog := setupLogFile(cfg)
	closeOut := setupOutputFile(cfg)
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, flag.Args())
	stop()
	closeOut()
	closeLog()
	os.Exit(code)
}

// run replays a single script (stdin or -i) or, when files are named on
// the command line, all of them in parallel. It returns the exit code.
func run(ctx context.Context, cfg *config.Config, args []string) int {
	var store history.Store
	if cfg.History.DBPath != "" {
		db, err := sqlite.Open(cfg.History.DBPath)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening history %s: %v\n", cfg.History.DBPath, err)
			return 1
		}
		defer db.Close() //nolint:errcheck // cleanup on exit
		store = db
	}

	if len(args) > 0 {
		if *resume != "" {
			fmt.Fprintln(cfg.LogFile, "Error: -resume replays a single game")
			return 2
		}
		sum, err := runBatch(ctx, cfg, store, args, *workers, cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return 1
		}
		if cfg.Verbosity >= config.Normal {
			fmt.Fprintf(cfg.LogFile, "%d script(s), %d failed, %d with rejected lines, %d distinct final position(s).\n",
				sum.Scripts, sum.Failed, sum.Rejected, sum.Distinct)
		}
		if sum.Failed > 0 || sum.Rejected > 0 {
			return 1
		}
		return 0
	}

	in, name, err := openScript(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error opening script %s: %v\n", cfg.ScriptFile, err)
		return 1
	}
	defer in.Close() //nolint:errcheck // read-only

	return runSingle(ctx, cfg, store, name, *resume, in)
}

// runSingle replays one script and returns the exit code.
func runSingle(ctx context.Context, cfg *config.Config, store history.Store, name, resumeID string, in io.Reader) int {
	s, err := newSession(ctx, cfg, name, store, resumeID)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if cfg.Verbosity >= config.Normal && store != nil {
		fmt.Fprintf(cfg.LogFile, "game %s\n", s.hist.GameID())
	}

	runErr := s.Run(ctx, in)
	if err := s.Finish(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		return 1
	}
	if runErr != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading %s: %v\n", name, runErr)
		return 1
	}
	if s.Errors() > 0 {
		return 1
	}
	return 0
}

// openScript opens the configured script, or stdin.
func openScript(cfg *config.Config) (io.ReadCloser, string, error) {
	if cfg.ScriptFile == "" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	file, err := os.Open(cfg.ScriptFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, "", err
	}
	return file, cfg.ScriptFile, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
	return func() { _ = file.Close() }
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return func() { _ = file.Close() }
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dicechess [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays dice chess move chains and reports the position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript lines:\n")
	fmt.Fprintf(os.Stderr, "  A1A2A3        apply a chain (first square names the piece)\n")
	fmt.Fprintf(os.Stderr, "  import E7E6   apply a chain received from the other side\n")
	fmt.Fprintf(os.Stderr, "  undo, redo    step through checkpoints\n")
	fmt.Fprintf(os.Stderr, "  board, score  print the position or the score\n")
	fmt.Fprintf(os.Stderr, "  # ...         comment\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: DICECHESS_SEED, DICECHESS_QUEEN, DICECHESS_FLIP, DICECHESS_FLIP_MODE,\n")
	fmt.Fprintf(os.Stderr, "  DICECHESS_MINE, DICECHESS_SCRIPT, DICECHESS_DB, DICECHESS_UNDO_LIMIT,\n")
	fmt.Fprintf(os.Stderr, "  DICECHESS_JSON, DICECHESS_SHOW_BOARD, DICECHESS_VERBOSITY, NO_COLOR\n")
}
