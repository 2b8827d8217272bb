// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/ledger"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
	"golang.org/x/sync/singleflight"
)

type finalizationService struct {
	rumors store.RumorRepository

	// inflight collapses concurrent finalizations of the same rumor within
	// this process. Other processes are held off by the row lock.
	inflight singleflight.Group

	// retryable classifies storage failures; see store.Storages.IsRetryable.
	retryable func(error) bool

	policy  voting.Policy
	metrics *metrics.Metrics
	events  EventPublisher

	now    Clock
	logger *logger.Logger
}

func NewFinalizationService(
	rumors store.RumorRepository,
	retryable func(error) bool,
	policy voting.Policy,
	m *metrics.Metrics,
	events EventPublisher,
	now Clock,
	logger *logger.Logger,
) FinalizationService {
	return &finalizationService{
		rumors:    rumors,
		retryable: retryable,
		policy:    policy,
		metrics:   m,
		events:    events,
		now:       now,
		logger:    logger,
	}
}

func (s *finalizationService) LockExpired(ctx context.Context) ([]string, error) {
	now := s.now()

	ids, err := s.rumors.LockExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("locking expired rumors failed: %w", err)
	}

	if len(ids) > 0 {
		s.metrics.RumorsLocked(metrics.LockDeadline, len(ids))
		for _, id := range ids {
			s.events.Publish(models.Event{Type: models.EventRumorLocked, RumorID: id, State: models.StateLocked, At: now})
		}
		logger.FromContext(ctx).Info().Int("count", len(ids)).Msg("expired rumors locked")
	}
	return ids, nil
}

func (s *finalizationService) Finalize(ctx context.Context, rumorID string) (models.Rumor, error) {
	v, err, _ := s.inflight.Do(rumorID, func() (any, error) {
		return s.finalize(ctx, rumorID)
	})
	if err != nil {
		return models.Rumor{}, err
	}
	return v.(models.Rumor), nil
}

func (s *finalizationService) finalize(ctx context.Context, rumorID string) (models.Rumor, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	now := s.now()

	var block models.LedgerBlock
	settle := func(rumor models.Rumor, votes []models.Vote, head models.LedgerHead) (models.Settlement, error) {
		st, err := s.settle(rumor, votes, head, now)
		block = st.Block
		return st, err
	}

	rumor, applied, err := s.rumors.FinalizeRumor(ctx, rumorID, now, settle)
	if err != nil {
		return models.Rumor{}, fmt.Errorf("finalization of rumor %s failed: %w", rumorID, err)
	}

	rumor = s.policy.Present(rumor, now)
	if !applied {
		return rumor, nil
	}

	decision := string(*rumor.FinalDecision)
	s.metrics.RumorFinalized(decision, block.Height, time.Since(start))
	s.events.Publish(models.Event{
		Type:      models.EventRumorFinalized,
		RumorID:   rumor.ID,
		State:     models.StateFinal,
		Decision:  rumor.FinalDecision,
		BlockHash: rumor.CurrentHash,
		At:        now,
	})
	log.Info().
		Str("rumor_id", rumor.ID).
		Str("decision", decision).
		Int64("height", block.Height).
		Str("hash", rumor.CurrentHash).
		Msg("rumor finalized")

	return rumor, nil
}

// settle decides the rumor and seals the outcome into the block that
// follows head.
func (s *finalizationService) settle(rumor models.Rumor, votes []models.Vote, head models.LedgerHead, now time.Time) (models.Settlement, error) {
	st, outcome := s.policy.Settle(votes)

	snapshot := models.VotingSnapshot{
		AreaOfVote:   rumor.AreaOfVote,
		VotingEndsAt: rumor.VotingEndsAt,
		Tally:        outcome.Tally,
		TieBroken:    outcome.TieBroken,
	}

	block, err := ledger.NewBlock(rumor, outcome.Decision, snapshot, head, now)
	if err != nil {
		return models.Settlement{}, err
	}
	st.Block = block
	return st, nil
}

func (s *finalizationService) FinalizeLocked(ctx context.Context, limit uint64) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := s.rumors.ListFinalizable(ctx, s.now(), limit)
	if err != nil {
		return 0, fmt.Errorf("listing finalizable rumors failed: %w", err)
	}

	done := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}

		if _, err = s.Finalize(ctx, id); err != nil {
			retry := s.retryable(err)
			s.metrics.FinalizeFailed(retry)
			log.Err(err).Str("rumor_id", id).Bool("retryable", retry).Msg("finalization failed")
			if retry {
				return done, err
			}
			continue
		}
		done++
	}
	return done, nil
}
