// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settlement is everything the finalization transaction writes for one rumor.
// It is computed in memory and applied atomically.
type Settlement struct {
	Decision VoteType
	Tally    Tally

	// VoterDeltas maps a nullifier to the reputation change of whoever cast
	// that vote.
	VoterDeltas map[string]float64

	// Agreed maps the same nullifiers to whether the vote matched the
	// decision. A zero reward policy makes the delta sign unusable for this.
	Agreed map[string]bool

	// PosterDelta is the reputation change of the rumor's author.
	PosterDelta float64

	// BlockThreshold blocks any profile whose points fall to this value or
	// below after the deltas are applied.
	BlockThreshold float64

	// Block is the ledger block to append.
	Block LedgerBlock
}

// Correct reports whether the vote identified by nullifier agreed with the
// decision.
func (s Settlement) Correct(nullifier string) bool {
	return s.Agreed[nullifier]
}
