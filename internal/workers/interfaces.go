// Package workers runs the client's background jobs.
//
// A Worker owns its goroutine lifecycle: Run starts it and returns, Stop
// signals it and waits for it to finish. Workers aggregates several of them
// so the client can start and stop everything at once.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Run starts the job in its own goroutine. It stops when ctx is done or
	// Stop is called.
	Run(ctx context.Context)

	// Stop signals the job and blocks until it has exited.
	Stop()
}

// Loader refetches the first page of the list.
type Loader interface {
	Load(ctx context.Context) error
}
