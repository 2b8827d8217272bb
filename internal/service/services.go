// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the use cases of the node on top of the
// repositories in internal/store and the pure rules in internal/voting.
package service

import (
	"time"

	"github.com/MKhiriev/vera-node/internal/adapter"
	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
)

type Services struct {
	AuthService         AuthService
	RumorService        RumorService
	VoteService         VoteService
	FinalizationService FinalizationService
	LedgerService       LedgerService
	UserService         UserService
	AdminService        AdminService
	AppInfoService      AppInfoService
}

// NewServices wires every service to the repositories in storages. A nil
// events publisher drops lifecycle events.
func NewServices(
	storages *store.Storages,
	validator adapter.AIValidator,
	cfg *config.StructuredConfig,
	m *metrics.Metrics,
	events EventPublisher,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = nopPublisher{}
	}

	var (
		now    Clock = func() time.Time { return time.Now().UTC() }
		policy       = cfg.VotingPolicy()
		hasher       = identity.NewKeyHasher(cfg.App.KeyPepper)
	)

	auth := NewAuthService(storages.ProfileRepository, cfg.App, now, logger)
	rumors := NewRumorService(storages.RumorRepository, storages.ProfileRepository, validator, policy, m, events, now, logger)
	votes := NewVoteService(storages.VoteRepository, storages.RumorRepository, storages.ProfileRepository, hasher, policy, m, events, now, logger)

	return &Services{
		AuthService:         NewAuthValidationService().Wrap(auth),
		RumorService:        NewRumorValidationService().Wrap(rumors),
		VoteService:         NewVoteValidationService().Wrap(votes),
		FinalizationService: NewFinalizationService(storages.RumorRepository, storages.IsRetryable, policy, m, events, now, logger),
		LedgerService:       NewLedgerService(storages.LedgerRepository, m, logger),
		UserService:         NewUserService(storages.ProfileRepository, storages.RumorRepository, policy, now, logger),
		AdminService:        NewAdminValidationService().Wrap(NewAdminService(storages.ProfileRepository, storages.StatsRepository, hasher, m, now, logger)),
		AppInfoService:      appInfo,
	}, nil
}
