// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

// Rejection reasons reported to metrics.
const (
	rejectAlreadyVoted = "already_voted"
	rejectClosed       = "closed"
	rejectBlocked      = "blocked"
	rejectCredentials  = "credentials"
)

// voteService casts anonymous votes. The profile is used to weigh the vote
// and is then forgotten: the stored vote is keyed by its nullifier only.
type voteService struct {
	votes    store.VoteRepository
	rumors   store.RumorRepository
	profiles store.ProfileRepository
	hasher   *identity.KeyHasher

	policy  voting.Policy
	metrics *metrics.Metrics
	events  EventPublisher

	now    Clock
	logger *logger.Logger
}

func NewVoteService(
	votes store.VoteRepository,
	rumors store.RumorRepository,
	profiles store.ProfileRepository,
	hasher *identity.KeyHasher,
	policy voting.Policy,
	m *metrics.Metrics,
	events EventPublisher,
	now Clock,
	logger *logger.Logger,
) VoteService {
	return &voteService{
		votes:    votes,
		rumors:   rumors,
		profiles: profiles,
		hasher:   hasher,
		policy:   policy,
		metrics:  m,
		events:   events,
		now:      now,
		logger:   logger,
	}
}

// CastVote records one vote of the presented key on req.RumorID. The weight
// is frozen from the voter's points at this moment.
func (s *voteService) CastVote(ctx context.Context, req models.CastVoteRequest) (models.Vote, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	key, profile, err := s.voter(ctx, req.ProfileID, req.SecretKey)
	if err != nil {
		s.metrics.VoteRejected(rejectCredentials)
		return models.Vote{}, err
	}
	if profile.IsBlocked {
		s.metrics.VoteRejected(rejectBlocked)
		return models.Vote{}, ErrUserBlocked
	}
	if profile.IsKeyExpired(now) {
		s.metrics.VoteRejected(rejectCredentials)
		return models.Vote{}, ErrKeyExpired
	}

	rumor, err := s.rumors.GetRumor(ctx, req.RumorID)
	if err != nil {
		return models.Vote{}, fmt.Errorf("rumor lookup failed: %w", err)
	}
	if err = voting.AcceptsVotes(rumor, now); err != nil {
		s.metrics.VoteRejected(rejectClosed)
		lazyLock(ctx, s.rumors, s.metrics, s.events, rumor, now)
		return models.Vote{}, err
	}

	within := voting.IsWithinArea(profile.Area, rumor.AreaOfVote)
	vote := models.Vote{
		Nullifier:    identity.DeriveNullifier(key, rumor.ID),
		RumorID:      rumor.ID,
		VoteType:     req.VoteType,
		Weight:       voting.ComputeWeight(profile.Points, within, s.policy.BaseWeight),
		IsWithinArea: within,
		CreatedAt:    now,
	}

	tally, err := s.votes.CastVote(ctx, vote, store.Voter{ProfileID: profile.ID, KeyHash: profile.SecretKeyHash}, now)
	switch {
	case errors.Is(err, store.ErrKeyNotCurrent):
		s.metrics.VoteRejected(rejectCredentials)
		return models.Vote{}, ErrInvalidCredentials
	case errors.Is(err, store.ErrAlreadyVoted):
		s.metrics.VoteRejected(rejectAlreadyVoted)
		return models.Vote{}, err
	case errors.Is(err, voting.ErrVotingClosed), errors.Is(err, voting.ErrRumorFinal):
		s.metrics.VoteRejected(rejectClosed)
		return models.Vote{}, err
	case err != nil:
		log.Err(err).Str("func", "*voteService.CastVote").Str("rumor_id", rumor.ID).Msg("vote was not recorded")
		return models.Vote{}, fmt.Errorf("vote was not recorded: %w", err)
	}

	s.metrics.VoteCast(string(vote.VoteType))

	if s.policy.EarlyLock.ShouldLock(tally) {
		lockRumor(ctx, s.rumors, s.metrics, s.events, rumor.ID, metrics.LockEarly, now)
	}

	return vote, nil
}

// VoteStatus answers whether the presented key already voted on the rumor,
// directly or through the key it replaced.
func (s *voteService) VoteStatus(ctx context.Context, req models.VoteStatusRequest) (models.VoteStatus, error) {
	key, _, err := s.voter(ctx, req.ProfileID, req.SecretKey)
	if err != nil {
		return models.VoteStatus{}, err
	}

	vote, err := s.votes.FindVote(ctx, identity.DeriveNullifier(key, req.RumorID), req.RumorID)
	switch {
	case errors.Is(err, store.ErrVoteNotFound):
		return models.VoteStatus{}, nil
	case err != nil:
		return models.VoteStatus{}, fmt.Errorf("vote lookup failed: %w", err)
	}

	return models.VoteStatus{HasVoted: true, VoteType: vote.VoteType.Ptr()}, nil
}

// voter checks that secretKey is well formed and belongs to the session's
// profile. The raw key is returned normalized for nullifier derivation.
func (s *voteService) voter(ctx context.Context, profileID, secretKey string) (string, models.Profile, error) {
	key, err := identity.NormalizeSecretKey(secretKey)
	if err != nil {
		return "", models.Profile{}, err
	}

	profile, err := s.profiles.FindProfileByID(ctx, profileID)
	if err != nil {
		return "", models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	if !s.hasher.Matches(key, profile.SecretKeyHash) {
		return "", models.Profile{}, ErrInvalidCredentials
	}
	return key, profile, nil
}
