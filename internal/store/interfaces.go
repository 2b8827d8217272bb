// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vera-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository persists profiles and their key history.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByID(ctx context.Context, id string) (models.Profile, error)

	// FindProfileByKeyHash looks a profile up by its current key hash. A hash
	// of a retired key yields ErrKeyRetired.
	FindProfileByKeyHash(ctx context.Context, keyHash string) (models.Profile, error)

	// Rekey replaces the profile's key in one transaction and aliases every
	// unsettled vote of the profile to the new key.
	Rekey(ctx context.Context, rekey Rekey) (models.Profile, error)

	Unblock(ctx context.Context, profileID string) (models.Profile, error)
	ListBlocked(ctx context.Context) ([]models.BlockedProfile, error)
}

// RumorRepository persists rumors and drives their lifecycle transitions.
type RumorRepository interface {
	// CreateRumor stores a new rumor and counts it on the poster's profile.
	CreateRumor(ctx context.Context, rumor models.Rumor) (models.Rumor, error)

	// GetRumor returns the rumor with its live tally. State and Stats are
	// left for the caller to derive.
	GetRumor(ctx context.Context, id string) (models.Rumor, error)
	ListRumors(ctx context.Context, filter models.RumorFilter, now time.Time) ([]models.Rumor, error)

	// LockRumor marks an unlocked, unfinalized rumor as locked. It reports
	// whether this call performed the transition.
	LockRumor(ctx context.Context, id string, now time.Time) (bool, error)

	// LockExpired locks every rumor whose deadline has passed and returns
	// their ids.
	LockExpired(ctx context.Context, now time.Time) ([]string, error)

	// ListFinalizable returns ids of rumors that are locked but not final.
	ListFinalizable(ctx context.Context, now time.Time, limit uint64) ([]string, error)

	// FinalizeRumor settles a locked rumor atomically. For a rumor that is
	// already final it returns the stored rumor and applied=false without
	// calling settle.
	FinalizeRumor(ctx context.Context, id string, now time.Time, settle SettleFunc) (rumor models.Rumor, applied bool, err error)
}

// VoteRepository persists anonymous votes.
type VoteRepository interface {
	// CastVote records vote for voter and returns the rumor's tally
	// including it. A second vote with the same nullifier, or with an alias
	// of one, fails with ErrAlreadyVoted. A voter whose key is no longer the
	// profile's current key fails with ErrKeyNotCurrent.
	CastVote(ctx context.Context, vote models.Vote, voter Voter, now time.Time) (models.Tally, error)

	// FindVote resolves nullifier directly or through an alias.
	FindVote(ctx context.Context, nullifier, rumorID string) (models.Vote, error)
}

// LedgerRepository reads the append-only block chain. Blocks are appended
// only by FinalizeRumor.
type LedgerRepository interface {
	Head(ctx context.Context) (models.LedgerHead, error)
	ListBlocks(ctx context.Context, fromHeight int64, limit uint64) ([]models.LedgerBlock, error)
	CountBlocks(ctx context.Context) (int64, error)
}

type StatsRepository interface {
	AdminStats(ctx context.Context, now time.Time) (models.AdminStats, error)
}

// ErrorClassificator decides whether a storage error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SettleFunc computes the settlement of rumor over its votes, with the ledger
// block built on top of head. It runs inside the finalization transaction
// and must not block.
type SettleFunc func(rumor models.Rumor, votes []models.Vote, head models.LedgerHead) (models.Settlement, error)

// Voter is the profile behind a vote and the hash of the key that cast it.
type Voter struct {
	ProfileID string
	KeyHash   string
}

// Rekey describes a key recovery.
type Rekey struct {
	ProfileID    string
	OldKeyHash   string
	NewKeyHash   string
	KeyExpiresAt time.Time
	Now          time.Time

	// AliasFor derives the new key's nullifier for rumorID.
	AliasFor func(rumorID string) string
}
