// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VoteType is a voter's verdict on a rumor. The same values are used for the
// final decision of a rumor.
type VoteType string

const (
	VoteFact VoteType = "FACT"
	VoteLie  VoteType = "LIE"
)

// Valid reports whether v is FACT or LIE.
func (v VoteType) Valid() bool {
	return v == VoteFact || v == VoteLie
}

// Ptr returns a pointer to a copy of v.
func (v VoteType) Ptr() *VoteType {
	return &v
}

// Vote is a single anonymous ballot. It is keyed by its nullifier and carries
// no reference to the profile that cast it.
type Vote struct {
	Nullifier    string    `json:"nullifier"`
	RumorID      string    `json:"rumorId"`
	VoteType     VoteType  `json:"voteType"`
	Weight       float64   `json:"weight"`
	IsWithinArea bool      `json:"isWithinArea"`
	CreatedAt    time.Time `json:"timestamp"`
}

// VoteStatus answers whether the presented key has already voted on a rumor.
type VoteStatus struct {
	HasVoted bool      `json:"hasVoted"`
	VoteType *VoteType `json:"voteType,omitempty"`
}
