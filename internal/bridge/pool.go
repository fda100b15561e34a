package bridge

import (
	"golang.org/x/sync/errgroup"
)

// Pool is the process-wide worker [Executor] multiplexing all network and
// disk operations over a bounded number of goroutines.
type Pool struct {
	grp *errgroup.Group
}

// NewPool constructs a Pool running at most size tasks concurrently. A
// non-positive size falls back to 4.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 4
	}

	grp := new(errgroup.Group)
	grp.SetLimit(size)

	return &Pool{grp: grp}
}

// Go implements [Executor]. It blocks while all workers are busy, which
// back-pressures schedulers rather than growing an unbounded queue.
func (p *Pool) Go(fn func()) {
	p.grp.Go(func() error {
		fn()
		return nil
	})
}

// Wait blocks until every scheduled task has finished. Used on shutdown so
// in-flight cache writes complete before the database closes.
func (p *Pool) Wait() {
	_ = p.grp.Wait()
}

// SyncExecutor runs every function inline on the caller's goroutine. Test
// substitute for [Pool].
type SyncExecutor struct{}

func (SyncExecutor) Go(fn func()) {
	fn()
}
