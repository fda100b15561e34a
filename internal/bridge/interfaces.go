// Package bridge runs long-latency operations on a concurrent worker context
// and delivers each outcome back to the single-threaded presentation consumer.
//
// Per task the life cycle is Scheduled -> Running -> Completed or Failed.
// Exactly one [Result] is emitted per task, into a bounded channel the
// consumer drains on its own turn, so the consumer needs no locking and never
// blocks on network or disk. There is no cancellation: once scheduled a task
// runs to completion and its result is always delivered; a consumer that has
// moved on filters stale results by task id or session identity.
package bridge

//go:generate mockgen -source=interfaces.go -destination=../mock/executor_mock.go -package=mock

// Executor schedules a function onto a concurrent execution context. It is
// injected so tests can substitute a synchronous implementation.
type Executor interface {
	Go(fn func())
}
