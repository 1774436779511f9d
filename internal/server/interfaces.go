package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server within ctx and frees associated
	// resources.
	Shutdown(ctx context.Context)
}

// Persister writes the final custody snapshot after the transports stop.
type Persister interface {
	Persist(ctx context.Context) error
}
