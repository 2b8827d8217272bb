// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/service"
)

var errInvalidInterval = errors.New("worker interval must be positive")

// NewWorkers builds the lock sweeper and the finalizer over one
// FinalizationService.
func NewWorkers(finalization service.FinalizationService, cfg config.Workers, logger *logger.Logger) []Worker {
	return []Worker{
		NewLockSweeper(finalization, cfg.SweepInterval, logger),
		NewFinalizer(finalization, cfg.SweepInterval, uint64(cfg.FinalizeBatch), logger),
	}
}

// tick calls fn once immediately and then every interval until ctx is done.
func tick(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	if interval <= 0 {
		return errInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		fn(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
