package workers

import (
	"context"
	"sync"
)

// Workers runs a set of background workers, one goroutine each.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run launches every worker on its own goroutine and returns immediately.
// Workers are expected to stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(wk Worker) {
			defer w.wg.Done()
			wk.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every worker started by Run has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
