package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := New(4, 16)
	var ran int32
	for i := 0; i < 16; i++ {
		p.Submit(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}
	p.Close()

	results := 0
	for range p.Run(context.Background()) {
		results++
	}
	if ran != 16 {
		t.Fatalf("expected 16 tasks run, got %d", ran)
	}
	if results != 16 {
		t.Fatalf("expected 16 results, got %d", results)
	}
}

func TestPool_ReportsTaskErrors(t *testing.T) {
	p := New(2, 4)
	wantErr := errors.New("boom")
	p.Submit(func(context.Context) error { return wantErr })
	p.Submit(func(context.Context) error { return nil })
	p.Close()

	failures := 0
	for r := range p.Run(context.Background()) {
		if r.Err != nil {
			if !errors.Is(r.Err, wantErr) {
				t.Fatalf("unexpected error: %v", r.Err)
			}
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
}

func TestPool_CancelStopsWorkers(t *testing.T) {
	p := New(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := p.Run(ctx)
	for range out {
	}
	// Workers exited on the cancelled context; Submit would block forever
	// now, so just verify the channel closed.
}

func TestPool_NilPoolRunReturnsClosedChannel(t *testing.T) {
	var p *Pool
	out := p.Run(context.Background())
	if _, ok := <-out; ok {
		t.Fatalf("expected a closed empty channel from a nil pool")
	}
}

func TestPool_RateLimitedTasksAllRun(t *testing.T) {
	p := New(4, 8)
	// High enough to finish fast, low enough that every start goes through
	// the ticker wait.
	p.SetRateLimit(1000)

	var ran int32
	for i := 0; i < 8; i++ {
		p.Submit(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}
	p.Close()
	for range p.Run(context.Background()) {
	}
	if ran != 8 {
		t.Fatalf("expected all 8 rate-limited tasks to run, got %d", ran)
	}
}

func TestPool_RateLimitSpacesTaskStarts(t *testing.T) {
	p := New(4, 4)
	p.SetRateLimit(20)

	start := time.Now()
	for i := 0; i < 4; i++ {
		p.Submit(func(context.Context) error { return nil })
	}
	p.Close()
	for range p.Run(context.Background()) {
	}

	// 4 starts at 20/s need at least 3 ticker intervals beyond the first.
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Fatalf("expected rate limiting to space starts, finished in %s", elapsed)
	}
}

func TestPool_ClearRateLimit(t *testing.T) {
	p := New(2, 2)
	p.SetRateLimit(1)
	p.SetRateLimit(0)

	var ran int32
	p.Submit(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	p.Submit(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	p.Close()

	start := time.Now()
	for range p.Run(context.Background()) {
	}
	if ran != 2 {
		t.Fatalf("expected both tasks to run, got %d", ran)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("expected cleared rate limit to run unthrottled, took %s", elapsed)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	p := New(0, 1)
	var ran int32
	p.Submit(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	p.Close()
	for range p.Run(context.Background()) {
	}
	if ran != 1 {
		t.Fatalf("expected the task to run, got %d", ran)
	}
}
