package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// writeScripts creates n chain scripts in a temp dir. Script i holds i+1
// lines so every transcript is distinct.
func writeScripts(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	names := make([]string, n)
	for i := range names {
		names[i] = filepath.Join(dir, fmt.Sprintf("game-%02d.txt", i))
		body := strings.Repeat("D1C2\n", i+1)
		if err := os.WriteFile(names[i], []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return names
}

// lineCounter replays a script by counting its chain lines.
func lineCounter(replayed *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(replayed, 1)
		res := ProcessResult{Name: item.Name, Index: item.Index}
		f, err := os.Open(item.Name)
		if err != nil {
			res.Error = err
			return res
		}
		defer f.Close()

		lines := 0
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			lines++
		}
		res.Error = sc.Err()
		res.Output = []byte(fmt.Sprintf("%d chains\n", lines))
		return res
	}
}

func TestRun_ReplaysInSubmissionOrder(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
	}{
		{"single worker", 1, 1},
		{"more workers than buffer", 4, 2},
		{"more workers than scripts", 32, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := writeScripts(t, 12)
			var replayed int32
			results := Run(context.Background(), names, lineCounter(&replayed),
				WithWorkers(tt.workers), WithBufferSize(tt.buffer))

			if len(results) != len(names) {
				t.Fatalf("results = %d; want %d", len(results), len(names))
			}
			for i, r := range results {
				if r.Index != i || r.Name != names[i] {
					t.Errorf("results[%d] = {%d %q}; want {%d %q}", i, r.Index, r.Name, i, names[i])
				}
				if r.Error != nil {
					t.Errorf("results[%d] error: %v", i, r.Error)
				}
				if want := fmt.Sprintf("%d chains\n", i+1); string(r.Output) != want {
					t.Errorf("results[%d] output = %q; want %q", i, r.Output, want)
				}
			}
			if got := atomic.LoadInt32(&replayed); int(got) != len(names) {
				t.Errorf("replayed = %d; want %d", got, len(names))
			}
		})
	}
}

func TestRun_MissingScriptKeepsItsPlace(t *testing.T) {
	names := writeScripts(t, 3)
	names[1] = filepath.Join(t.TempDir(), "gone.txt")

	var replayed int32
	results := Run(context.Background(), names, lineCounter(&replayed), WithWorkers(3))
	if len(results) != 3 {
		t.Fatalf("results = %d; want 3", len(results))
	}
	if results[1].Error == nil || results[1].Name != names[1] {
		t.Errorf("results[1] = %+v; want an open error for %s", results[1], names[1])
	}
	if results[0].Error != nil || results[2].Error != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Error, results[2].Error)
	}
}

func TestRun_NoScripts(t *testing.T) {
	var replayed int32
	results := Run(context.Background(), nil, lineCounter(&replayed))
	if len(results) != 0 || replayed != 0 {
		t.Errorf("results = %d, replayed = %d; want 0, 0", len(results), replayed)
	}
}

func TestRun_CancelSkipsUnstartedScripts(t *testing.T) {
	names := writeScripts(t, 6)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var replayed int32
	count := lineCounter(&replayed)
	process := func(item WorkItem) ProcessResult {
		if item.Index == 0 {
			cancel()
			time.Sleep(20 * time.Millisecond) // let the stop land
		}
		return count(item)
	}

	results := Run(ctx, names, process, WithWorkers(1), WithBufferSize(len(names)))
	if len(results) != 1 || results[0].Index != 0 {
		t.Fatalf("results = %+v; want only the first script", results)
	}
	if got := atomic.LoadInt32(&replayed); got != 1 {
		t.Errorf("replayed = %d; want 1", got)
	}
}

func TestPool_StoppedPoolDrainsQueue(t *testing.T) {
	names := writeScripts(t, 5)
	var replayed int32
	pool := NewPoolWithOptions(lineCounter(&replayed), WithWorkers(2), WithBufferSize(len(names)))
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop()")
	}
	pool.Start()

	for i, name := range names {
		pool.Submit(WorkItem{Name: name, Index: i})
	}
	go pool.Close()

	got := 0
	for range pool.Results() {
		got++
	}
	if got != 0 || atomic.LoadInt32(&replayed) != 0 {
		t.Errorf("results = %d, replayed = %d; want 0, 0", got, replayed)
	}
}

func TestNewPoolWithOptions_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"explicit", []PoolOption{WithWorkers(4), WithBufferSize(3)}, 4, 3},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-1)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoolWithOptions(nil, tt.opts...)
			if p.numWorkers != tt.wantWorkers || cap(p.workChan) != tt.wantBuffer {
				t.Errorf("workers = %d, buffer = %d; want %d, %d",
					p.numWorkers, cap(p.workChan), tt.wantWorkers, tt.wantBuffer)
			}
		})
	}
}
