// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

var newIDGenerator = func() idGenerator { return utils.NewUUIDGenerator() }

// lazyLock flags a rumor whose deadline passed before the sweeper got to it.
// Failures are logged only: the derived state is already LOCKED.
func lazyLock(ctx context.Context, rumors store.RumorRepository, m *metrics.Metrics, events EventPublisher, rumor models.Rumor, now time.Time) {
	if rumor.IsLocked || rumor.IsFinal || now.Before(rumor.VotingEndsAt) {
		return
	}
	lockRumor(ctx, rumors, m, events, rumor.ID, metrics.LockDeadline, now)
}

func lockRumor(ctx context.Context, rumors store.RumorRepository, m *metrics.Metrics, events EventPublisher, id, trigger string, now time.Time) bool {
	locked, err := rumors.LockRumor(ctx, id, now)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "lockRumor").Str("rumor_id", id).Msg("rumor lock failed")
		return false
	}
	if !locked {
		return false
	}

	m.RumorsLocked(trigger, 1)
	events.Publish(models.Event{Type: models.EventRumorLocked, RumorID: id, State: models.StateLocked, At: now})
	logger.FromContext(ctx).Info().Str("rumor_id", id).Str("trigger", trigger).Msg("rumor locked")
	return true
}

func listRumors(ctx context.Context, rumors store.RumorRepository, policy voting.Policy, filter models.RumorFilter, now time.Time) ([]models.Rumor, error) {
	switch {
	case filter.Limit == 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	list, err := rumors.ListRumors(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("rumor listing failed: %w", err)
	}

	for i := range list {
		list[i] = policy.Present(list[i], now)
	}
	return list, nil
}
