// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/models"
)

type statsRepository struct {
	*DB
	logger *logger.Logger
}

func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

// AdminStats reads the dashboard counters. Rumor states are evaluated at
// now, so rumors past their deadline count as locked even before the
// sweeper has flagged them.
func (s *statsRepository) AdminStats(ctx context.Context, now time.Time) (models.AdminStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAdminStatsQuery(ctx, now)
	if err != nil {
		return models.AdminStats{}, err
	}

	var stats models.AdminStats
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&stats.Users.Total,
		&stats.Users.Blocked,
		&stats.Rumors.Total,
		&stats.Rumors.Active,
		&stats.Rumors.Locked,
		&stats.Rumors.Finalized,
		&stats.Votes.Total,
		&stats.Votes.Active,
		&stats.Blockchain.TotalBlocks,
	)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.AdminStats").Msg("failed to read admin stats")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	stats.Users.Active = stats.Users.Total - stats.Users.Blocked

	return stats, nil
}
