// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// hiddenMarker is the JSON literal clients receive for withheld stats.
const hiddenMarker = "hidden"

// Tally is the raw vote aggregate of one rumor.
type Tally struct {
	TotalVotes        int64   `json:"totalVotes"`
	FactVotes         int64   `json:"factVotes"`
	LieVotes          int64   `json:"lieVotes"`
	FactWeight        float64 `json:"factWeight"`
	LieWeight         float64 `json:"lieWeight"`
	UnderAreaVotes    int64   `json:"underAreaVotes"`
	NotUnderAreaVotes int64   `json:"notUnderAreaVotes"`
}

// Add folds a single vote into the tally.
func (t *Tally) Add(v Vote) {
	t.TotalVotes++
	switch v.VoteType {
	case VoteFact:
		t.FactVotes++
		t.FactWeight += v.Weight
	case VoteLie:
		t.LieVotes++
		t.LieWeight += v.Weight
	}
	if v.IsWithinArea {
		t.UnderAreaVotes++
	} else {
		t.NotUnderAreaVotes++
	}
}

// WithinAreaShare returns the fraction of votes cast from within the area.
func (t Tally) WithinAreaShare() float64 {
	if t.TotalVotes == 0 {
		return 0
	}
	return float64(t.UnderAreaVotes) / float64(t.TotalVotes)
}

// StatValue is either a visible number or the hidden marker.
// The zero value is a visible zero.
type StatValue struct {
	hidden bool
	value  float64
}

// Visible wraps a number that may be shown to callers.
func Visible(v float64) StatValue {
	return StatValue{value: v}
}

// Hidden returns the withheld marker.
func Hidden() StatValue {
	return StatValue{hidden: true}
}

// IsHidden reports whether the value is withheld.
func (s StatValue) IsHidden() bool {
	return s.hidden
}

// Value returns the number and false when the value is hidden.
func (s StatValue) Value() (float64, bool) {
	if s.hidden {
		return 0, false
	}
	return s.value, true
}

// MarshalJSON encodes a visible value as a JSON number and a hidden one as
// the string "hidden".
func (s StatValue) MarshalJSON() ([]byte, error) {
	if s.hidden {
		return json.Marshal(hiddenMarker)
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts a JSON number or the string "hidden".
func (s *StatValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var marker string
		if err := json.Unmarshal(b, &marker); err != nil {
			return err
		}
		if marker != hiddenMarker {
			return fmt.Errorf("unexpected stat marker %q", marker)
		}
		*s = Hidden()
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Visible(v)
	return nil
}

// StatsView is the client-facing projection of a Tally.
type StatsView struct {
	TotalVotes        StatValue `json:"totalVotes"`
	FactVotes         StatValue `json:"factVotes"`
	LieVotes          StatValue `json:"lieVotes"`
	FactWeight        StatValue `json:"factWeight"`
	LieWeight         StatValue `json:"lieWeight"`
	UnderAreaVotes    StatValue `json:"underAreaVotes"`
	NotUnderAreaVotes StatValue `json:"notUnderAreaVotes"`
	Progress          StatValue `json:"progress"`
}

// VisibleStats projects t with every field visible. Progress is the within
// area share in percent.
func VisibleStats(t Tally) StatsView {
	return StatsView{
		TotalVotes:        Visible(float64(t.TotalVotes)),
		FactVotes:         Visible(float64(t.FactVotes)),
		LieVotes:          Visible(float64(t.LieVotes)),
		FactWeight:        Visible(t.FactWeight),
		LieWeight:         Visible(t.LieWeight),
		UnderAreaVotes:    Visible(float64(t.UnderAreaVotes)),
		NotUnderAreaVotes: Visible(float64(t.NotUnderAreaVotes)),
		Progress:          Visible(t.WithinAreaShare() * 100),
	}
}

// HiddenStats returns a view with every field withheld.
func HiddenStats() StatsView {
	return StatsView{
		TotalVotes:        Hidden(),
		FactVotes:         Hidden(),
		LieVotes:          Hidden(),
		FactWeight:        Hidden(),
		LieWeight:         Hidden(),
		UnderAreaVotes:    Hidden(),
		NotUnderAreaVotes: Hidden(),
		Progress:          Hidden(),
	}
}

// AllHidden reports whether every field of the view is withheld.
func (v StatsView) AllHidden() bool {
	for _, s := range []StatValue{
		v.TotalVotes, v.FactVotes, v.LieVotes, v.FactWeight,
		v.LieWeight, v.UnderAreaVotes, v.NotUnderAreaVotes, v.Progress,
	} {
		if !s.IsHidden() {
			return false
		}
	}
	return true
}
