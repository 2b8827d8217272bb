// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/service"
)

// LockSweeper periodically locks rumors whose voting window has closed.
type LockSweeper struct {
	finalization service.FinalizationService
	interval     time.Duration

	logger *logger.Logger
}

func NewLockSweeper(finalization service.FinalizationService, interval time.Duration, logger *logger.Logger) *LockSweeper {
	return &LockSweeper{
		finalization: finalization,
		interval:     interval,
		logger:       logger,
	}
}

func (s *LockSweeper) Name() string { return "lock-sweeper" }

func (s *LockSweeper) Run(ctx context.Context) error {
	return tick(ctx, s.interval, s.sweep)
}

func (s *LockSweeper) sweep(ctx context.Context) {
	locked, err := s.finalization.LockExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*LockSweeper.sweep").Msg("locking expired rumors failed")
		}
		return
	}
	if len(locked) > 0 {
		s.logger.Info().Strs("rumor_ids", locked).Msg("locked expired rumors")
	}
}
