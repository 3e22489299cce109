// processor.go - Script replay and reporting
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/config"
	"github.com/lgbarn/dice-chess-go/internal/engine"
	"github.com/lgbarn/dice-chess-go/internal/hashing"
	"github.com/lgbarn/dice-chess-go/internal/history"
	"github.com/lgbarn/dice-chess-go/internal/notation"
	"github.com/lgbarn/dice-chess-go/internal/output"
)

var (
	startColor = color.New(color.FgCyan, color.Bold)
	winColor   = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// positionFinder looks up stored positions by Zobrist hash.
type positionFinder interface {
	FindByHash(ctx context.Context, hash uint64) ([]history.Record, error)
}

// Session replays one script against one board.
// NOT thread-safe: batch mode gives every script its own Session.
type Session struct {
	cfg      *config.Config
	name     string
	board    *chess.Board
	hist     *history.History
	finder   positionFinder // nil without a store
	rec      *notation.Recorder
	detector *hashing.DuplicateDetector
	out      output.BoardWriter
	msg      io.Writer // status lines
	logger   *log.Logger

	chains  []string // chains leading to the current position
	undone  []string // chains taken back, for redo
	lineNum int
	errors  int
}

// newSession sets up the board for cfg. With resumeID the last stored
// position of that game is restored; otherwise the dice are rolled with the
// configured seed and the opening position is stored as ply 0.
func newSession(ctx context.Context, cfg *config.Config, name string, store history.Store, resumeID string) (*Session, error) {
	board, err := engine.NewGame(cfg.Game.Variant())
	if err != nil {
		return nil, err
	}

	opts := []history.Option{history.WithLimit(cfg.History.Limit)}
	if store != nil {
		opts = append(opts, history.WithStore(store))
	}
	if resumeID != "" {
		opts = append(opts, history.WithGameID(resumeID))
	}

	s := &Session{
		cfg:      cfg,
		name:     name,
		board:    board,
		hist:     history.New(opts...),
		rec:      notation.NewRecorder(),
		detector: hashing.NewDuplicateDetector(0),
		logger:   log.New(cfg.LogFile, name+": ", 0),
	}
	s.finder, _ = store.(positionFinder)
	if cfg.Output.JSONFormat {
		s.out = output.NewJSONWriter(cfg.OutputFile)
		s.msg = cfg.LogFile
	} else {
		s.out = output.NewTextWriter(cfg.OutputFile)
		s.msg = cfg.OutputFile
	}

	if resumeID != "" {
		if err := s.hist.Resume(ctx, board); err != nil {
			return nil, err
		}
		s.debugf("resumed game %s at ply %d", resumeID, s.hist.Ply())
	} else {
		rng, used, err := engine.NewRand(cfg.Game.Seed)
		if err != nil {
			return nil, err
		}
		start, err := engine.Randomize(board, rng)
		if err != nil {
			return nil, err
		}
		if err := s.hist.Start(ctx, board); err != nil {
			return nil, err
		}
		s.debugf("game %s seed %d", s.hist.GameID(), used)
		s.announce(startColor, "%s moves first!", start)
	}
	s.detector.CheckAndAdd(board)
	return s, nil
}

// Run executes every line of r. A failing line is logged and skipped; the
// returned error is only for read failures.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.lineNum++
		if err := s.Exec(ctx, scanner.Text()); err != nil {
			s.errors++
			s.logger.Printf("line %d: %v", s.lineNum, err)
		}
	}
	return scanner.Err()
}

// Exec runs one script line.
func (s *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	cmd, rest, _ := strings.Cut(line, " ")
	switch strings.ToLower(cmd) {
	case "undo":
		return s.undo(ctx)
	case "redo":
		return s.redo(ctx)
	case "board":
		return s.writeBoard(fmt.Sprintf("ply %d", s.hist.Ply()))
	case "score":
		s.say("%s", output.FormatScore(s.board, s.cfg.Game.Mine))
		return nil
	case "import":
		s.rec.Imported(rest)
		return s.play(ctx, rest)
	default:
		return s.play(ctx, line)
	}
}

// play validates and applies one chain.
func (s *Session) play(ctx context.Context, text string) error {
	squares, err := notation.ParseChain(text)
	if err != nil {
		return err
	}
	if err := notation.ValidateChain(s.board, squares); err != nil {
		return err
	}

	s.hist.Checkpoint(s.board)
	outs, err := notation.ApplyChain(s.board, squares)
	if err != nil {
		return err
	}

	chain := notation.FormatChain(squares)
	s.chains = append(s.chains, chain)
	s.undone = s.undone[:0]

	for _, out := range outs {
		if exported, done := s.rec.Observe(out); done {
			s.say("> %s", exported)
		}
	}
	s.commit(ctx, chain)

	last := outs[len(outs)-1]
	if s.cfg.Verbosity >= config.Verbose {
		s.logger.Printf("ply %d: %s %s", s.hist.Ply(), chain, last)
	}
	if n := s.detector.CheckAndAdd(s.board); n > 0 {
		s.debugf("position after %s seen %d time(s) before", chain, n)
	}
	s.reportStored(ctx, chain)

	if last.GameOver {
		s.announce(winColor, "%s wins!!!", last.Winner)
	} else if colour, _, ok := engine.ToMove(s.board); ok && !engine.HasLegalMoves(s.board, colour) {
		s.announce(warnColor, "%s has no legal move; undo to continue", colour)
	}

	if s.cfg.Output.ShowBoard {
		return s.writeBoard(chain)
	}
	return nil
}

func (s *Session) undo(ctx context.Context) error {
	if err := s.hist.Undo(s.board); err != nil {
		return err
	}
	s.rec.Reset()
	if n := len(s.chains); n > 0 {
		s.undone = append(s.undone, s.chains[n-1])
		s.chains = s.chains[:n-1]
	}
	s.commit(ctx, history.ChainUndo)
	return nil
}

func (s *Session) redo(ctx context.Context) error {
	if err := s.hist.Redo(s.board); err != nil {
		return err
	}
	if n := len(s.undone); n > 0 {
		s.chains = append(s.chains, s.undone[n-1])
		s.undone = s.undone[:n-1]
	}
	s.commit(ctx, history.ChainRedo)
	return nil
}

// commit stores the current position. The move has already been made, so a
// store failure is logged rather than rejecting the line.
func (s *Session) commit(ctx context.Context, chain string) {
	if err := s.hist.Commit(ctx, s.board, chain); err != nil {
		s.logger.Printf("line %d: position not stored: %v", s.lineNum, err)
	}
}

// reportStored logs the other stored games that reached the current
// position, once per game.
func (s *Session) reportStored(ctx context.Context, chain string) {
	if s.finder == nil || s.cfg.Verbosity < config.Normal {
		return
	}
	recs, err := s.finder.FindByHash(ctx, s.Hash())
	if err != nil {
		s.logger.Printf("look up position after %s: %v", chain, err)
		return
	}
	seen := make(map[string]bool)
	for _, rec := range recs {
		if rec.GameID == s.hist.GameID() || seen[rec.GameID] {
			continue
		}
		seen[rec.GameID] = true
		s.logger.Printf("position after %s also reached in game %s at ply %d", chain, rec.GameID, rec.Ply)
	}
}

func (s *Session) snapshot(label string) output.Snapshot {
	return output.Snapshot{
		Label:  label,
		Board:  s.board,
		Mine:   s.cfg.Game.Mine,
		Chains: s.chains,
	}
}

func (s *Session) writeBoard(label string) error {
	return s.out.WriteSnapshot(s.snapshot(label))
}

// Finish writes the final position and closes the output writer.
func (s *Session) Finish() error {
	if err := s.out.WriteSnapshot(s.snapshot(s.name)); err != nil {
		return err
	}
	if s.cfg.Verbosity >= config.Verbose {
		s.logger.Printf("%d distinct position(s), %d repeat(s)",
			s.detector.UniqueCount(), s.detector.DuplicateCount())
	}
	return s.out.Close()
}

// Hash returns the Zobrist hash of the current position.
func (s *Session) Hash() uint64 {
	return hashing.GenerateZobristHash(s.board)
}

// Errors returns the number of script lines that failed.
func (s *Session) Errors() int {
	return s.errors
}

// say writes a plain status line unless running quiet.
func (s *Session) say(format string, args ...interface{}) {
	if s.cfg.Verbosity >= config.Normal {
		fmt.Fprintf(s.msg, format+"\n", args...)
	}
}

// announce writes a coloured status line unless running quiet.
func (s *Session) announce(c *color.Color, format string, args ...interface{}) {
	if s.cfg.Verbosity >= config.Normal {
		c.Fprintf(s.msg, format+"\n", args...)
	}
}

// debugf logs at verbose level.
func (s *Session) debugf(format string, args ...interface{}) {
	if s.cfg.Verbosity >= config.Verbose {
		s.logger.Printf(format, args...)
	}
}
