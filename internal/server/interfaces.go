// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns the first error that stopped it, nil on a clean shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Worker is a background loop that runs until ctx is cancelled.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
