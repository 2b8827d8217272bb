// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

// keyExpiryWarning is how early before expiry the stats start warning.
const keyExpiryWarning = 7 * 24 * time.Hour

type userService struct {
	profiles store.ProfileRepository
	rumors   store.RumorRepository
	policy   voting.Policy
	now      Clock
	logger   *logger.Logger
}

func NewUserService(profiles store.ProfileRepository, rumors store.RumorRepository, policy voting.Policy, now Clock, logger *logger.Logger) UserService {
	return &userService{profiles: profiles, rumors: rumors, policy: policy, now: now, logger: logger}
}

func (s *userService) Stats(ctx context.Context, profileID string) (models.UserStats, error) {
	p, err := s.profiles.FindProfileByID(ctx, profileID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return models.UserStats{
		RumorsPosted:   p.RumorsPosted,
		RumorsVoted:    p.VotesCast,
		CorrectVotes:   p.CorrectVotes,
		IncorrectVotes: p.IncorrectVotes,
		Points:         p.Points,
		AccountStatus:  p.Status(),
		KeyExpiresAt:   p.KeyExpiresAt,
		KeyExpiresSoon: p.KeyExpiresAt.Sub(s.now()) <= keyExpiryWarning,
	}, nil
}

// Rumors lists the rumors posted by profileID, newest first.
func (s *userService) Rumors(ctx context.Context, profileID string) ([]models.Rumor, error) {
	return listRumors(ctx, s.rumors, s.policy, models.RumorFilter{PosterID: profileID, Limit: maxListLimit}, s.now())
}
