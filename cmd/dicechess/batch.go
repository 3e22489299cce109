// batch.go - Parallel replay of several scripts
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/dice-chess-go/internal/config"
	"github.com/lgbarn/dice-chess-go/internal/hashing"
	"github.com/lgbarn/dice-chess-go/internal/history"
	"github.com/lgbarn/dice-chess-go/internal/worker"
)

// batchSummary counts what a batch run produced.
type batchSummary struct {
	Scripts  int
	Failed   int // scripts that could not be opened or set up
	Rejected int // scripts with at least one rejected line
	Distinct int // distinct final positions
}

// replayScript returns the worker function for one script file. Each script
// gets its own session writing into a buffer, so output can be emitted in
// submission order once the pool is done.
func replayScript(ctx context.Context, cfg *config.Config, store history.Store, finals *hashing.ThreadSafeDuplicateDetector) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Name: item.Name, Index: item.Index}

		file, err := os.Open(item.Name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			res.Error = err
			return res
		}
		defer file.Close() //nolint:errcheck // read-only

		var buf, logBuf bytes.Buffer
		local := *cfg
		local.OutputFile = &buf
		local.LogFile = &logBuf

		s, err := newSession(ctx, &local, item.Name, store, "")
		if err != nil {
			res.Error = err
			return res
		}
		if err := s.Run(ctx, file); err != nil {
			res.Error = err
		}
		if err := s.Finish(); err != nil && res.Error == nil {
			res.Error = err
		}
		if s.Errors() > 0 && res.Error == nil {
			res.Error = fmt.Errorf("%d line(s) rejected", s.Errors())
		}

		finals.CheckAndAdd(s.board)
		res.Output = buf.Bytes()
		res.Log = logBuf.Bytes()
		res.Board = s.board
		res.Hash = s.Hash()
		res.GameID = s.hist.GameID()
		return res
	}
}

// runBatch replays names in parallel and writes their transcripts to w in
// the order given.
func runBatch(ctx context.Context, cfg *config.Config, store history.Store, names []string, numWorkers int, w io.Writer) (batchSummary, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	finals := hashing.NewThreadSafeDuplicateDetector(0)

	results := worker.Run(ctx, names, replayScript(ctx, cfg, store, finals),
		worker.WithWorkers(numWorkers), worker.WithBufferSize(2*numWorkers))

	sum := batchSummary{Scripts: len(names)}
	for _, r := range results {
		if _, err := w.Write(r.Output); err != nil {
			return sum, err
		}
		if _, err := cfg.LogFile.Write(r.Log); err != nil {
			return sum, err
		}
		if r.Error != nil {
			if r.Board == nil {
				sum.Failed++
			} else {
				sum.Rejected++
			}
			fmt.Fprintf(cfg.LogFile, "%s: %v\n", r.Name, r.Error)
			continue
		}
		if cfg.Verbosity >= config.Verbose {
			fmt.Fprintf(cfg.LogFile, "%s: game %s final %016x\n", r.Name, r.GameID, r.Hash)
		}
	}
	sum.Failed += len(names) - len(results)
	sum.Distinct = finals.UniqueCount()
	return sum, ctx.Err()
}
