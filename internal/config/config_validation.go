// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

const (
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultGRPCAddress     = "0.0.0.0:9090"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultTokenIssuer     = "vera-node"
	defaultTokenDuration   = 24 * time.Hour
	defaultKeyTTL          = 90 * 24 * time.Hour
	defaultAdapterTimeout  = 10 * time.Second
	defaultSweepInterval   = 30 * time.Second
	defaultFinalizeBatch   = 50
)

// applyDefaults fills every optional field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.GRPCAddress, defaultGRPCAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, defaultShutdownTimeout)

	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, defaultTokenDuration)
	setDefault(&cfg.App.KeyTTL, defaultKeyTTL)
	setDefault(&cfg.App.Version, "N/A")

	setDefault(&cfg.Adapter.RequestTimeout, defaultAdapterTimeout)

	setDefault(&cfg.Workers.SweepInterval, defaultSweepInterval)
	setDefault(&cfg.Workers.FinalizeBatch, defaultFinalizeBatch)

	def := voting.DefaultPolicy()
	setDefault(&cfg.Policy.BaseWeight, def.BaseWeight)
	setDefault(&cfg.Policy.EarlyLockMinWithinAreaRatio, def.EarlyLock.MinWithinAreaRatio)
	setDefault(&cfg.Policy.EarlyLockDecisiveShare, def.EarlyLock.DecisiveShare)
	setDefault(&cfg.Policy.TieBreak, string(def.TieBreak))
	setDefault(&cfg.Policy.CorrectVoteReward, def.CorrectVoteReward)
	setDefault(&cfg.Policy.IncorrectVotePenalty, def.IncorrectVotePenalty)
	setDefault(&cfg.Policy.WeightFactor, def.WeightFactor)
	setDefault(&cfg.Policy.PosterFactReward, def.PosterFactReward)
	setDefault(&cfg.Policy.PosterLiePenalty, def.PosterLiePenalty)
	setDefault(&cfg.Policy.BlockThreshold, def.BlockThreshold)
	setDefault(&cfg.Policy.MaxVotingDuration, def.MaxVotingDuration)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.KeyPepper == "" || cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: key pepper and token sign key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AdminUsername != "" && cfg.App.AdminPasswordHash == "" {
		return fmt.Errorf("%w: admin username set without a password hash", ErrInvalidAppConfigs)
	}

	if cfg.Workers.SweepInterval < 0 || cfg.Workers.FinalizeBatch < 0 {
		return ErrInvalidWorkerConfigs
	}

	p := cfg.Policy
	switch {
	case p.BaseWeight <= 0:
		return fmt.Errorf("%w: base weight must be positive", ErrInvalidPolicyConfigs)
	case !models.VoteType(p.TieBreak).Valid():
		return fmt.Errorf("%w: tie break must be FACT or LIE", ErrInvalidPolicyConfigs)
	case p.BlockThreshold >= 0:
		return fmt.Errorf("%w: block threshold must be negative", ErrInvalidPolicyConfigs)
	case p.EarlyLockMinVotes < 0,
		p.EarlyLockMinWithinAreaRatio < 0, p.EarlyLockMinWithinAreaRatio > 1,
		p.EarlyLockDecisiveShare <= 0.5, p.EarlyLockDecisiveShare > 1:
		return fmt.Errorf("%w: early lock thresholds out of range", ErrInvalidPolicyConfigs)
	case p.MaxVotingDuration <= 0:
		return fmt.Errorf("%w: max voting duration must be positive", ErrInvalidPolicyConfigs)
	}

	return nil
}

// VotingPolicy converts the configured policy into the engine's form.
func (cfg *StructuredConfig) VotingPolicy() voting.Policy {
	p := cfg.Policy
	return voting.Policy{
		BaseWeight: p.BaseWeight,
		EarlyLock: voting.EarlyLockPolicy{
			MinVotes:           p.EarlyLockMinVotes,
			MinWithinAreaRatio: p.EarlyLockMinWithinAreaRatio,
			DecisiveShare:      p.EarlyLockDecisiveShare,
		},
		TieBreak:             models.VoteType(p.TieBreak),
		CorrectVoteReward:    p.CorrectVoteReward,
		IncorrectVotePenalty: p.IncorrectVotePenalty,
		WeightFactor:         p.WeightFactor,
		PosterFactReward:     p.PosterFactReward,
		PosterLiePenalty:     p.PosterLiePenalty,
		BlockThreshold:       p.BlockThreshold,
		MaxVotingDuration:    p.MaxVotingDuration,
	}
}
