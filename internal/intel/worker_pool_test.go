package intel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_DrainsQueuedTasksAfterClose(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool := NewWorkerPool(2, 1)
	pool.SetRateLimit(100)
	results := pool.Run(ctx)

	var ran atomic.Int32
	const tasks = 6
	for i := 0; i < tasks; i++ {
		pool.Submit(func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	pool.Close()

	got := 0
	for range results {
		got++
	}
	if got != tasks {
		t.Fatalf("expected %d results, got %d", tasks, got)
	}
	if n := ran.Load(); n != tasks {
		t.Fatalf("expected %d tasks run, got %d", tasks, n)
	}
	if ctx.Err() != nil {
		t.Fatalf("pool did not drain before the deadline: %v", ctx.Err())
	}
}

func TestWorkerPool_ContextCancelReleasesRateWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	pool := NewWorkerPool(1, 4)
	pool.SetRateLimit(1)
	results := pool.Run(ctx)

	pool.Submit(func(context.Context) error { return nil })
	pool.Submit(func(context.Context) error { return nil })
	cancel()
	pool.Close()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-results:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("results channel not closed after cancel")
		}
	}
}
