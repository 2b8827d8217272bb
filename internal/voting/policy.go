// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package voting holds the pure rules of the engine: vote weighting, the
// rumor lifecycle and the decision and settlement of a locked rumor.
//
// Nothing here touches storage or the clock; callers pass "now" and the
// persisted state in, and get values back.
package voting

import (
	"time"

	"github.com/MKhiriev/vera-node/models"
)

// EarlyLockPolicy locks a rumor before its deadline once participation is
// high enough and the outcome is decisive. A zero MinVotes disables it.
type EarlyLockPolicy struct {
	// MinVotes is the minimum number of votes before an early lock is
	// considered.
	MinVotes int64

	// MinWithinAreaRatio is the minimum share of votes cast from within the
	// rumor's area, in [0, 1].
	MinWithinAreaRatio float64

	// DecisiveShare is the minimum share of total weight the leading side
	// must hold, in (0.5, 1].
	DecisiveShare float64
}

// Enabled reports whether the early lock can ever fire.
func (p EarlyLockPolicy) Enabled() bool {
	return p.MinVotes > 0
}

// Policy collects every tunable of the engine.
type Policy struct {
	// BaseWeight is the floor of every vote's weight.
	BaseWeight float64

	EarlyLock EarlyLockPolicy

	// TieBreak is the decision when both sides have equal weight.
	TieBreak models.VoteType

	// CorrectVoteReward and IncorrectVotePenalty are flat parts of a voter's
	// delta. WeightFactor scales the voter's own weight on top of them.
	CorrectVoteReward    float64
	IncorrectVotePenalty float64
	WeightFactor         float64

	// PosterFactReward and PosterLiePenalty apply to the rumor's author.
	PosterFactReward float64
	PosterLiePenalty float64

	// BlockThreshold blocks profiles whose points drop to it or below.
	BlockThreshold float64

	// MaxVotingDuration bounds votingEndsAt - postedAt.
	MaxVotingDuration time.Duration
}

// DefaultPolicy returns the policy used when configuration leaves values
// unset.
func DefaultPolicy() Policy {
	return Policy{
		BaseWeight: 1,
		EarlyLock: EarlyLockPolicy{
			MinVotes:           0,
			MinWithinAreaRatio: 0.3,
			DecisiveShare:      0.8,
		},
		TieBreak:             models.VoteLie,
		CorrectVoteReward:    1,
		IncorrectVotePenalty: 1,
		WeightFactor:         0.1,
		PosterFactReward:     5,
		PosterLiePenalty:     10,
		BlockThreshold:       -50,
		MaxVotingDuration:    72 * time.Hour,
	}
}
