// Package workers runs the server's background jobs.
//
// Every [Worker] blocks in Run until its context is cancelled. [Workers]
// starts a set of them together and waits for all to stop.
package workers

import "context"

// Worker is a background job.
type Worker interface {
	Run(ctx context.Context)
}

// Persister writes a snapshot of the custody state.
type Persister interface {
	Persist(ctx context.Context) error
}
