// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RumorState is the lifecycle state of a rumor. The sequence is always a
// prefix of ACTIVE, LOCKED, FINAL.
type RumorState string

const (
	StateActive RumorState = "ACTIVE"
	StateLocked RumorState = "LOCKED"
	StateFinal  RumorState = "FINAL"
)

// Valid reports whether s is a known state.
func (s RumorState) Valid() bool {
	return s == StateActive || s == StateLocked || s == StateFinal
}

// Rumor is an anonymous claim put to a weighted vote.
type Rumor struct {
	ID string `json:"id"`

	// PosterID links the rumor to its author for the poster reward.
	// Never serialized.
	PosterID string `json:"-"`

	Content      string    `json:"content"`
	AreaOfVote   Area      `json:"areaOfVote"`
	PostedAt     time.Time `json:"postedAt"`
	VotingEndsAt time.Time `json:"votingEndsAt"`

	IsLocked    bool       `json:"isLocked"`
	LockedAt    *time.Time `json:"lockedAt,omitempty"`
	IsFinal     bool       `json:"isFinal"`
	FinalizedAt *time.Time `json:"finalizedAt,omitempty"`

	// FinalDecision is set if and only if IsFinal is true.
	FinalDecision *VoteType `json:"finalDecision"`

	// PreviousHash and CurrentHash are populated at finalization only.
	PreviousHash string `json:"previousHash"`
	CurrentHash  string `json:"currentHash"`

	// State is derived at read time and serialized for clients.
	State RumorState `json:"status"`

	// Tally holds the raw aggregate. While the rumor is not final it is a
	// live aggregate over votes, afterwards it is the frozen final tally.
	Tally Tally `json:"-"`

	// Stats is the client view of Tally, hidden while locked and not final.
	Stats StatsView `json:"stats"`

	// RequiredWithinAreaPercentage is the within-area share that the early
	// lock policy requires, in percent. Zero when early lock is disabled.
	RequiredWithinAreaPercentage float64 `json:"requiredWithinAreaPercentage"`
}

// RumorFilter narrows rumor listings. Zero values mean "no filter".
type RumorFilter struct {
	Area     Area
	State    RumorState
	PosterID string
	Limit    uint64
	Offset   uint64
}
