// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Profile is the pseudonymous account behind a secret key.
//
// The raw secret key is never stored: only its keyed hash is kept in
// SecretKeyHash. Points are mutated exclusively by rumor finalization.
type Profile struct {
	// ID is the server-assigned identifier (UUIDv7).
	ID string `json:"id"`

	// SecretKeyHash is the keyed hash of the current secret key.
	// Never serialized.
	SecretKeyHash string `json:"-"`

	// Area is the organizational area chosen at registration.
	Area Area `json:"area"`

	// Points is the signed reputation score.
	Points float64 `json:"points"`

	// IsBlocked disallows voting and posting while set.
	IsBlocked bool `json:"isBlocked"`

	// KeyExpiresAt is the moment after which the current key can no longer
	// be used for login and must be recovered.
	KeyExpiresAt time.Time `json:"keyExpiresAt"`

	RumorsPosted   int64 `json:"rumorsPosted"`
	VotesCast      int64 `json:"rumorsVoted"`
	CorrectVotes   int64 `json:"correctVotes"`
	IncorrectVotes int64 `json:"incorrectVotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsKeyExpired reports whether the profile's current key is expired at now.
func (p Profile) IsKeyExpired(now time.Time) bool {
	return !p.KeyExpiresAt.IsZero() && !now.Before(p.KeyExpiresAt)
}

// AccountStatus is the coarse account health shown to the profile owner.
type AccountStatus string

const (
	AccountActive  AccountStatus = "ACTIVE"
	AccountWarning AccountStatus = "WARNING"
	AccountBlocked AccountStatus = "BLOCKED"
)

// Status derives the account status: blocked wins, negative reputation
// yields a warning.
func (p Profile) Status() AccountStatus {
	switch {
	case p.IsBlocked:
		return AccountBlocked
	case p.Points < 0:
		return AccountWarning
	default:
		return AccountActive
	}
}

// UserStats is the response of the personal statistics endpoint.
type UserStats struct {
	RumorsPosted   int64         `json:"rumorsPosted"`
	RumorsVoted    int64         `json:"rumorsVoted"`
	CorrectVotes   int64         `json:"correctVotes"`
	IncorrectVotes int64         `json:"incorrectVotes"`
	Points         float64       `json:"points"`
	AccountStatus  AccountStatus `json:"accountStatus"`
	KeyExpiresAt   time.Time     `json:"keyExpiresAt"`
	KeyExpiresSoon bool          `json:"keyExpiresSoon"`
}
