// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/adapter"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

const (
	defaultListLimit uint64 = 50
	maxListLimit     uint64 = 200
)

type rumorService struct {
	rumors    store.RumorRepository
	profiles  store.ProfileRepository
	validator adapter.AIValidator
	ids       idGenerator

	policy  voting.Policy
	metrics *metrics.Metrics
	events  EventPublisher

	now    Clock
	logger *logger.Logger
}

func NewRumorService(
	rumors store.RumorRepository,
	profiles store.ProfileRepository,
	validator adapter.AIValidator,
	policy voting.Policy,
	m *metrics.Metrics,
	events EventPublisher,
	now Clock,
	logger *logger.Logger,
) RumorService {
	return &rumorService{
		rumors:    rumors,
		profiles:  profiles,
		validator: validator,
		ids:       newIDGenerator(),
		policy:    policy,
		metrics:   m,
		events:    events,
		now:       now,
		logger:    logger,
	}
}

// CreateRumor posts a rumor after the voting window and the AI verdict are
// checked. A refused submission changes nothing.
func (s *rumorService) CreateRumor(ctx context.Context, req models.CreateRumorRequest) (models.CreateRumorResponse, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	poster, err := s.profiles.FindProfileByID(ctx, req.PosterID)
	if err != nil {
		return models.CreateRumorResponse{}, fmt.Errorf("poster lookup failed: %w", err)
	}
	if poster.IsBlocked {
		return models.CreateRumorResponse{}, ErrUserBlocked
	}

	if err = voting.ValidateVotingWindow(now, req.VotingEndsAt, s.policy.MaxVotingDuration); err != nil {
		return models.CreateRumorResponse{}, err
	}

	verdict, err := s.validate(ctx, req.Content)
	if err != nil {
		return models.CreateRumorResponse{}, err
	}
	if !verdict.Accepted() {
		s.metrics.RumorRejected()
		log.Info().Str("reason", verdict.Reason).Msg("rumor rejected by content validation")
		return models.CreateRumorResponse{}, &RejectionError{Reason: verdict.Reason}
	}

	rumor, err := s.rumors.CreateRumor(ctx, models.Rumor{
		ID:           s.ids.Generate(),
		PosterID:     poster.ID,
		Content:      req.Content,
		AreaOfVote:   req.AreaOfVote,
		PostedAt:     now,
		VotingEndsAt: req.VotingEndsAt.UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*rumorService.CreateRumor").Msg("rumor creation ended with error")
		return models.CreateRumorResponse{}, fmt.Errorf("rumor creation ended with error: %w", err)
	}

	s.metrics.RumorPosted()
	s.events.Publish(models.Event{
		Type:    models.EventRumorCreated,
		RumorID: rumor.ID,
		State:   models.StateActive,
		At:      now,
	})

	return models.CreateRumorResponse{Rumor: s.policy.Present(rumor, now), Validation: verdict}, nil
}

// ValidateContent runs only the AI check.
func (s *rumorService) ValidateContent(ctx context.Context, req models.ValidateContentRequest) (models.AIValidation, error) {
	return s.validate(ctx, req.Content)
}

// GetRumor returns the rumor as clients see it at this moment. A rumor past
// its deadline is flagged locked on the way.
func (s *rumorService) GetRumor(ctx context.Context, id string) (models.Rumor, error) {
	rumor, err := s.rumors.GetRumor(ctx, id)
	if err != nil {
		return models.Rumor{}, fmt.Errorf("rumor lookup failed: %w", err)
	}

	now := s.now()
	lazyLock(ctx, s.rumors, s.metrics, s.events, rumor, now)
	return s.policy.Present(rumor, now), nil
}

func (s *rumorService) GetStats(ctx context.Context, id string) (models.StatsView, error) {
	rumor, err := s.GetRumor(ctx, id)
	if err != nil {
		return models.StatsView{}, err
	}
	return rumor.Stats, nil
}

func (s *rumorService) ListRumors(ctx context.Context, filter models.RumorFilter) ([]models.Rumor, error) {
	return listRumors(ctx, s.rumors, s.policy, filter, s.now())
}

func (s *rumorService) validate(ctx context.Context, content string) (models.AIValidation, error) {
	verdict, err := s.validator.Validate(ctx, content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*rumorService.validate").Msg("content validation failed")
		return models.AIValidation{}, fmt.Errorf("%w: %w", ErrValidatorUnavailable, err)
	}
	return verdict, nil
}
