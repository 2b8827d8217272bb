// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/models"
)

type adminService struct {
	profiles store.ProfileRepository
	stats    store.StatsRepository
	hasher   *identity.KeyHasher
	metrics  *metrics.Metrics
	now      Clock
	logger   *logger.Logger
}

func NewAdminService(profiles store.ProfileRepository, stats store.StatsRepository, hasher *identity.KeyHasher, m *metrics.Metrics, now Clock, logger *logger.Logger) AdminService {
	return &adminService{profiles: profiles, stats: stats, hasher: hasher, metrics: m, now: now, logger: logger}
}

func (s *adminService) Stats(ctx context.Context) (models.AdminStats, error) {
	stats, err := s.stats.AdminStats(ctx, s.now())
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("collecting admin stats failed: %w", err)
	}
	return stats, nil
}

func (s *adminService) BlockedProfiles(ctx context.Context) ([]models.BlockedProfile, error) {
	list, err := s.profiles.ListBlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing blocked profiles failed: %w", err)
	}
	return list, nil
}

// Unblock clears the blocked flag of the profile named by id or by its
// current secret key. Points are left as they are.
func (s *adminService) Unblock(ctx context.Context, req models.UnblockRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profileID := req.ProfileID
	if req.SecretKey != "" {
		key, err := identity.NormalizeSecretKey(req.SecretKey)
		if err != nil {
			return models.Profile{}, err
		}
		p, err := s.profiles.FindProfileByKeyHash(ctx, s.hasher.Hash(key))
		if err != nil {
			return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
		}
		profileID = p.ID
	}
	if profileID == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	p, err := s.profiles.Unblock(ctx, profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("unblocking profile failed: %w", err)
	}

	s.metrics.ProfileUnblocked()
	log.Info().Str("profile_id", p.ID).Msg("profile unblocked")
	return p, nil
}
