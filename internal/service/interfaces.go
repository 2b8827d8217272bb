// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vera-node/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Recover issues a new key for the profile owning req.SecretKey. Expired
	// keys are accepted here; that is what recovery is for.
	Recover(ctx context.Context, req models.RecoverRequest) (models.AuthResponse, error)

	Profile(ctx context.Context, profileID string) (models.Profile, error)
	AdminLogin(ctx context.Context, req models.AdminLoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type RumorService interface {
	CreateRumor(ctx context.Context, req models.CreateRumorRequest) (models.CreateRumorResponse, error)
	ValidateContent(ctx context.Context, req models.ValidateContentRequest) (models.AIValidation, error)
	GetRumor(ctx context.Context, id string) (models.Rumor, error)
	GetStats(ctx context.Context, id string) (models.StatsView, error)
	ListRumors(ctx context.Context, filter models.RumorFilter) ([]models.Rumor, error)
}

type VoteService interface {
	CastVote(ctx context.Context, req models.CastVoteRequest) (models.Vote, error)
	VoteStatus(ctx context.Context, req models.VoteStatusRequest) (models.VoteStatus, error)
}

// FinalizationService drives rumors from ACTIVE through LOCKED to FINAL.
type FinalizationService interface {
	// LockExpired locks every rumor whose deadline passed and returns the
	// ids it locked.
	LockExpired(ctx context.Context) ([]string, error)

	// Finalize settles one locked rumor. Calling it again for a final rumor
	// returns the stored result and changes nothing.
	Finalize(ctx context.Context, rumorID string) (models.Rumor, error)

	// FinalizeLocked finalizes up to limit locked rumors and returns how
	// many it finalized. It stops at the first retryable failure.
	FinalizeLocked(ctx context.Context, limit uint64) (int, error)
}

type LedgerService interface {
	ListBlocks(ctx context.Context, fromHeight int64, limit uint64) ([]models.LedgerBlock, error)

	// Verify re-checks the whole chain. A broken chain yields the report
	// together with an error wrapping ErrLedgerIntegrity.
	Verify(ctx context.Context) (models.LedgerReport, error)

	// Export copies every block the sink does not have yet and returns how
	// many were copied.
	Export(ctx context.Context, sink BlockSink) (int64, error)
}

type UserService interface {
	Stats(ctx context.Context, profileID string) (models.UserStats, error)
	Rumors(ctx context.Context, profileID string) ([]models.Rumor, error)
}

type AdminService interface {
	Stats(ctx context.Context) (models.AdminStats, error)
	BlockedProfiles(ctx context.Context) ([]models.BlockedProfile, error)
	Unblock(ctx context.Context, req models.UnblockRequest) (models.Profile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EventPublisher receives lifecycle events for the live feed. Publish must
// not block.
type EventPublisher interface {
	Publish(event models.Event)
}

// BlockSink is an append-only copy of the ledger, such as an audit archive.
type BlockSink interface {
	Head(ctx context.Context) (models.LedgerHead, error)
	Append(ctx context.Context, blocks []models.LedgerBlock) error
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// Wrappers add behavior such as request validation around a service.
type (
	AuthServiceWrapper interface {
		Wrap(AuthService) AuthService
	}
	RumorServiceWrapper interface {
		Wrap(RumorService) RumorService
	}
	VoteServiceWrapper interface {
		Wrap(VoteService) VoteService
	}
	AdminServiceWrapper interface {
		Wrap(AdminService) AdminService
	}
)

type nopPublisher struct{}

func (nopPublisher) Publish(models.Event) {}
