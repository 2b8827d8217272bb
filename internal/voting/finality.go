// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package voting

import (
	"math"

	"github.com/MKhiriev/vera-node/models"
)

// Outcome is the decision reached over a set of votes.
type Outcome struct {
	Decision  models.VoteType
	Tally     models.Tally
	TieBroken bool
}

// Decide sums the weights on each side. The heavier side wins; equal
// weights resolve to tieBreak.
func Decide(votes []models.Vote, tieBreak models.VoteType) Outcome {
	var tally models.Tally
	for _, v := range votes {
		tally.Add(v)
	}

	switch {
	case tally.FactWeight > tally.LieWeight:
		return Outcome{Decision: models.VoteFact, Tally: tally}
	case tally.LieWeight > tally.FactWeight:
		return Outcome{Decision: models.VoteLie, Tally: tally}
	default:
		return Outcome{Decision: tieBreak, Tally: tally, TieBroken: true}
	}
}

// VoterDelta is the reputation change of a voter with the given weight.
// Agreeing voters gain, disagreeing voters lose; both scale with weight.
func (p Policy) VoterDelta(agreed bool, weight float64) float64 {
	if agreed {
		return round2(p.CorrectVoteReward + p.WeightFactor*weight)
	}
	return -round2(p.IncorrectVotePenalty + p.WeightFactor*weight)
}

// PosterDelta is the reputation change of the rumor's author.
func (p Policy) PosterDelta(decision models.VoteType) float64 {
	if decision == models.VoteFact {
		return p.PosterFactReward
	}
	return -p.PosterLiePenalty
}

// Settle decides a locked rumor and computes every reputation delta. The
// ledger block is left empty for the caller to fill.
func (p Policy) Settle(votes []models.Vote) (models.Settlement, Outcome) {
	outcome := Decide(votes, p.TieBreak)

	deltas := make(map[string]float64, len(votes))
	agreed := make(map[string]bool, len(votes))
	for _, v := range votes {
		agreed[v.Nullifier] = v.VoteType == outcome.Decision
		deltas[v.Nullifier] = p.VoterDelta(agreed[v.Nullifier], v.Weight)
	}

	return models.Settlement{
		Decision:       outcome.Decision,
		Tally:          outcome.Tally,
		VoterDeltas:    deltas,
		Agreed:         agreed,
		PosterDelta:    p.PosterDelta(outcome.Decision),
		BlockThreshold: p.BlockThreshold,
	}, outcome
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
