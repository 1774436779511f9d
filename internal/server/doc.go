// Package server runs the custody transports.
//
// A server starts the HTTP and gRPC listeners that are configured together
// with the background workers. On SIGINT, SIGTERM or SIGQUIT it drains the
// listeners, stops the workers and writes a final snapshot of the component.
package server
