package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// blockingWorker runs until its context is cancelled and counts invocations.
type blockingWorker struct {
	runs atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunAllAndStopOnCancel(t *testing.T) {
	w1 := &blockingWorker{}
	w2 := &blockingWorker{}
	w3 := &blockingWorker{}

	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ws.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop after cancel")
	}

	for i, w := range []*blockingWorker{w1, w2, w3} {
		if got := w.runs.Load(); got != 1 {
			t.Errorf("worker[%d]: expected 1 run, got %d", i, got)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_WaitBeforeRun(t *testing.T) {
	ws := NewWorkers(&blockingWorker{})

	// Wait on a never-started aggregate must not block
	ws.Wait()
}
