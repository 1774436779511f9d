// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the custody command-line client.
//
// It wires the server adapter, the sealed local wallet of confidential
// openings and the client services behind a set of cobra commands, one per
// custody operation, plus an interactive dashboard.
package client
