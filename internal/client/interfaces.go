// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable command-line front end of the custody server.
type Client interface {
	// Run parses the process arguments, executes the selected command and
	// returns its error.
	Run() error
}
