package bridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/rs/zerolog"
)

// resultBufferSize bounds the result channel. A full buffer blocks workers,
// never the consumer.
const resultBufferSize = 64

// Result is the single terminal message of a task. Either Value or Err is
// meaningful, never both.
type Result struct {
	// TaskID is the identifier returned by Schedule, letting the consumer
	// match results to operations and drop the stale ones.
	TaskID string

	Value any
	Err   error
}

// Bridge pairs an [Executor] with the bounded result channel the consumer
// drains.
type Bridge struct {
	exec    Executor
	results chan Result

	logger *logger.Logger
}

// New constructs a Bridge delivering over a channel of capacity
// resultBufferSize.
func New(exec Executor, log *logger.Logger) *Bridge {
	return &Bridge{
		exec:    exec,
		results: make(chan Result, resultBufferSize),
		logger:  log,
	}
}

// Schedule submits fn to the worker executor and returns the task id
// immediately. The task context carries an operation-scoped logger keyed by
// the id. fn's outcome is delivered as exactly one Result; a panic inside fn
// is recovered and delivered as a failed Result.
func (b *Bridge) Schedule(ctx context.Context, fn func(ctx context.Context) (any, error)) string {
	id := uuid.NewString()

	log := b.logger.GetChildLogger()
	log.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("task_id", id)
	})
	log.Debug().Msg("task scheduled")

	taskCtx := log.WithContext(ctx)

	b.exec.Go(func() {
		log.Debug().Msg("task running")

		value, err := runTask(taskCtx, fn)
		if err != nil {
			log.Debug().Err(err).Msg("task failed")
		} else {
			log.Debug().Msg("task completed")
		}

		b.results <- Result{TaskID: id, Value: value, Err: err}
	})

	return id
}

// Deliver pushes a synthetic result that did not come from a scheduled task,
// such as a provisional cached view published before a refresh. Returns the
// generated task id.
func (b *Bridge) Deliver(value any, err error) string {
	id := uuid.NewString()
	b.results <- Result{TaskID: id, Value: value, Err: err}
	return id
}

// Results returns the channel the consumer drains on its own execution
// context.
func (b *Bridge) Results() <-chan Result {
	return b.results
}

func runTask(ctx context.Context, fn func(ctx context.Context) (any, error)) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("task panic: %v", r)
		}
	}()

	return fn(ctx)
}
