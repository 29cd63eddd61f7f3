package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// recordingFunc returns a process function that stamps a record with the item's index.
func recordingFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Record: &game.Record{Index: item.Index}}
	}
}

// countingFunc returns a process function that counts the games it plays.
func countingFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

func items(n int) []WorkItem {
	out := make([]WorkItem, n)
	for i := range out {
		out[i] = WorkItem{Index: i, Seed: int64(100 + i)}
	}
	return out
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(recordingFunc(), tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorkers)
			}
			if cap(pool.games) != tt.wantBuffer {
				t.Errorf("queue = %d; want %d", cap(pool.games), tt.wantBuffer)
			}
		})
	}
}

func TestPoolPlaysEverything(t *testing.T) {
	var played int32
	pool := NewPoolWithOptions(countingFunc(&played), WithWorkers(8), WithBufferSize(4))
	pool.Start()

	const numGames = 100
	go func() {
		for _, item := range items(numGames) {
			pool.Submit(item)
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}
	if len(seen) != numGames {
		t.Errorf("results = %d; want %d", len(seen), numGames)
	}
	if got := atomic.LoadInt32(&played); got != numGames {
		t.Errorf("played = %d; want %d", got, numGames)
	}
}

func TestPoolStopDropsQueuedGames(t *testing.T) {
	var played int32
	pool := NewPoolWithOptions(countingFunc(&played), WithBufferSize(5))
	if pool.IsStopped() {
		t.Fatal("new pool is stopped")
	}

	// Queue before starting so nothing runs until Stop has been seen.
	for _, item := range items(5) {
		pool.Submit(item)
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop")
	}
	pool.Start()
	go pool.Close()

	for range pool.Results() {
		t.Error("stopped pool produced a result")
	}
	if got := atomic.LoadInt32(&played); got != 0 {
		t.Errorf("played = %d; want 0", got)
	}
}

func TestRunAll(t *testing.T) {
	variableDelay := func(item WorkItem) ProcessResult {
		if item.Index%3 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index, Record: &game.Record{Index: item.Index}}
	}

	work := items(12)
	results := RunAll(context.Background(), work, variableDelay, WithWorkers(4), WithBufferSize(2))
	if len(results) != len(work) {
		t.Fatalf("results = %d; want %d", len(results), len(work))
	}
	for i, result := range results {
		if result.Index != i || result.Error != nil || result.Record == nil || result.Record.Index != i {
			t.Errorf("results[%d] = %+v", i, result)
		}
	}
}

func TestRunAllEmpty(t *testing.T) {
	if got := RunAll(context.Background(), nil, recordingFunc()); len(got) != 0 {
		t.Errorf("results = %d; want 0", len(got))
	}
}

func TestRunAllCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var played int32
	results := RunAll(ctx, items(6), countingFunc(&played), WithWorkers(2))

	if got := atomic.LoadInt32(&played); got != 0 {
		t.Errorf("played = %d; want 0", got)
	}
	if len(results) != 6 {
		t.Fatalf("results = %d; want 6", len(results))
	}
	for i, result := range results {
		if result.Index != i || result.Record != nil || !errors.Is(result.Error, context.Canceled) {
			t.Errorf("results[%d] = %+v; want index %d with context.Canceled", i, result, i)
		}
	}
}

func TestRunAllCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var played int32
	cancelOnFirst := func(item WorkItem) ProcessResult {
		atomic.AddInt32(&played, 1)
		cancel()
		time.Sleep(10 * time.Millisecond)
		return ProcessResult{Index: item.Index, Record: &game.Record{Index: item.Index}}
	}

	const numGames = 20
	results := RunAll(ctx, items(numGames), cancelOnFirst, WithWorkers(1), WithBufferSize(numGames))

	if len(results) != numGames {
		t.Fatalf("results = %d; want %d", len(results), numGames)
	}
	got := int(atomic.LoadInt32(&played))
	if got == 0 || got == numGames {
		t.Fatalf("played = %d; want some but not all of %d", got, numGames)
	}
	skipped := 0
	for i, result := range results {
		if result.Index != i {
			t.Errorf("results[%d].Index = %d", i, result.Index)
		}
		if result.Record == nil {
			skipped++
			if !errors.Is(result.Error, context.Canceled) {
				t.Errorf("results[%d].Error = %v; want context.Canceled", i, result.Error)
			}
		}
	}
	if skipped != numGames-got {
		t.Errorf("skipped = %d; want %d", skipped, numGames-got)
	}
}
