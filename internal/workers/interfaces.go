// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers holds the background loops that move rumors through their
// lifecycle without waiting for a request to touch them.
//
// The lock sweeper locks rumors whose voting window closed; the finalizer
// settles locked rumors in batches and appends their ledger blocks. Both run
// on a fixed interval and once right after start, so a restarted node
// catches up immediately.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled and only
// returns an error when the loop cannot start at all.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
