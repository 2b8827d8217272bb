// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/service"
)

// Finalizer periodically settles locked rumors.
//
// Each tick drains the backlog batch by batch: it asks for another batch
// while the previous one came back full.
type Finalizer struct {
	finalization service.FinalizationService
	interval     time.Duration
	batch        uint64

	logger *logger.Logger
}

func NewFinalizer(finalization service.FinalizationService, interval time.Duration, batch uint64, logger *logger.Logger) *Finalizer {
	if batch == 0 {
		batch = 1
	}
	return &Finalizer{
		finalization: finalization,
		interval:     interval,
		batch:        batch,
		logger:       logger,
	}
}

func (f *Finalizer) Name() string { return "finalizer" }

func (f *Finalizer) Run(ctx context.Context) error {
	return tick(ctx, f.interval, f.drain)
}

func (f *Finalizer) drain(ctx context.Context) {
	total := 0
	for ctx.Err() == nil {
		done, err := f.finalization.FinalizeLocked(ctx, f.batch)
		total += done
		if err != nil {
			if ctx.Err() == nil {
				f.logger.Err(err).Str("func", "*Finalizer.drain").Int("finalized", total).Msg("finalizing locked rumors stopped")
			}
			break
		}
		if uint64(done) < f.batch {
			break
		}
	}

	if total > 0 {
		f.logger.Info().Int("finalized", total).Msg("finalized locked rumors")
	}
}
