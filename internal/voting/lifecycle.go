// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package voting

import (
	"time"

	"github.com/MKhiriev/vera-node/models"
)

// StateOf derives the lifecycle state of r at now. A rumor whose deadline
// has passed is LOCKED even if the sweeper has not flagged it yet.
func StateOf(r models.Rumor, now time.Time) models.RumorState {
	switch {
	case r.IsFinal:
		return models.StateFinal
	case r.IsLocked || !now.Before(r.VotingEndsAt):
		return models.StateLocked
	default:
		return models.StateActive
	}
}

// CanTransition reports whether from -> to is allowed. Only forward steps
// of one state and staying in place are permitted.
func CanTransition(from, to models.RumorState) bool {
	switch {
	case from == to:
		return from.Valid()
	case from == models.StateActive && to == models.StateLocked:
		return true
	case from == models.StateLocked && to == models.StateFinal:
		return true
	default:
		return false
	}
}

// AcceptsVotes returns nil if r is ACTIVE at now.
func AcceptsVotes(r models.Rumor, now time.Time) error {
	switch StateOf(r, now) {
	case models.StateActive:
		return nil
	case models.StateFinal:
		return ErrRumorFinal
	default:
		return ErrVotingClosed
	}
}

// ShouldLock reports whether the early lock fires for tally t.
func (p EarlyLockPolicy) ShouldLock(t models.Tally) bool {
	if !p.Enabled() || t.TotalVotes < p.MinVotes {
		return false
	}
	if t.WithinAreaShare() < p.MinWithinAreaRatio {
		return false
	}

	total := t.FactWeight + t.LieWeight
	if total <= 0 {
		return false
	}
	return max(t.FactWeight, t.LieWeight)/total >= p.DecisiveShare
}

// RequiredWithinAreaPercentage is the within-area share, in percent, that
// must be reached before an early lock. Zero when disabled.
func (p EarlyLockPolicy) RequiredWithinAreaPercentage() float64 {
	if !p.Enabled() {
		return 0
	}
	return p.MinWithinAreaRatio * 100
}

// StatsFor projects the rumor's tally for API consumers. Stats are withheld
// while the rumor is locked and not yet final.
func StatsFor(r models.Rumor, now time.Time) models.StatsView {
	if StateOf(r, now) == models.StateLocked {
		return models.HiddenStats()
	}
	return models.VisibleStats(r.Tally)
}

// Present fills the derived fields of r for a response at now.
func (p Policy) Present(r models.Rumor, now time.Time) models.Rumor {
	r.State = StateOf(r, now)
	r.Stats = StatsFor(r, now)
	r.RequiredWithinAreaPercentage = p.EarlyLock.RequiredWithinAreaPercentage()
	return r
}

// ValidateVotingWindow checks postedAt < votingEndsAt <= postedAt+max.
func ValidateVotingWindow(postedAt, votingEndsAt time.Time, maxDuration time.Duration) error {
	if !votingEndsAt.After(postedAt) {
		return ErrInvalidVotingWindow
	}
	if maxDuration > 0 && votingEndsAt.Sub(postedAt) > maxDuration {
		return ErrInvalidVotingWindow
	}
	return nil
}
