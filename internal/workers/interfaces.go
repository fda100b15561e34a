// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by any long-running background
// component, such as the event stream listener. Run is expected to block
// until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
