// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package voting

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/vera-node/models"
	"pgregory.net/rapid"
)

func TestComputeWeight_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.Float64Range(0.1, 10).Draw(t, "base")
		a := rapid.Float64Range(-1e6, 1e6).Draw(t, "a")
		b := rapid.Float64Range(-1e6, 1e6).Draw(t, "b")
		within := rapid.Bool().Draw(t, "within")

		if w := ComputeWeight(a, within, base); w < base {
			t.Fatalf("weight %v below base %v", w, base)
		}
		if a <= b && ComputeWeight(a, within, base) > ComputeWeight(b, within, base) {
			t.Fatalf("weight not monotonic in points: %v vs %v", a, b)
		}
		if ComputeWeight(a, true, base) < ComputeWeight(a, false, base) && a >= 0 {
			t.Fatalf("within-area weight below outside weight for points %v", a)
		}
	})
}

func TestDecide_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		votes := make([]models.Vote, n)
		for i := range votes {
			votes[i] = models.Vote{
				Nullifier: fmt.Sprintf("n%d", i),
				VoteType:  rapid.SampledFrom([]models.VoteType{models.VoteFact, models.VoteLie}).Draw(t, "type"),
				Weight:    rapid.Float64Range(1, 100).Draw(t, "weight"),
			}
		}
		tieBreak := rapid.SampledFrom([]models.VoteType{models.VoteFact, models.VoteLie}).Draw(t, "tieBreak")

		got := Decide(votes, tieBreak)
		if got.Tally.TotalVotes != int64(n) {
			t.Fatalf("total votes %d, want %d", got.Tally.TotalVotes, n)
		}

		// order of votes must not matter
		reversed := make([]models.Vote, n)
		for i, v := range votes {
			reversed[n-1-i] = v
		}
		if again := Decide(reversed, tieBreak); again.Decision != got.Decision {
			t.Fatalf("decision depends on vote order: %s vs %s", got.Decision, again.Decision)
		}

		switch {
		case got.Tally.FactWeight > got.Tally.LieWeight && got.Decision != models.VoteFact,
			got.Tally.LieWeight > got.Tally.FactWeight && got.Decision != models.VoteLie:
			t.Fatalf("lighter side won: %+v", got)
		}
	})
}
