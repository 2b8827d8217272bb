// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LedgerBlock seals the final decision of one rumor into the global chain.
type LedgerBlock struct {
	Height       int64     `json:"height"`
	RumorID      string    `json:"rumorId"`
	Content      string    `json:"content"`
	Decision     VoteType  `json:"decision"`
	VotingData   string    `json:"votingData"`
	PreviousHash string    `json:"previousHash"`
	CurrentHash  string    `json:"currentHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LedgerHead is the tip of the chain that the next block links to.
type LedgerHead struct {
	Height int64
	Hash   string
}

// VotingSnapshot is the frozen voting data sealed into a block.
// Field order is part of the block hash, so it must not change.
type VotingSnapshot struct {
	AreaOfVote   Area      `json:"areaOfVote"`
	VotingEndsAt time.Time `json:"votingEndsAt"`
	Tally        Tally     `json:"tally"`
	TieBroken    bool      `json:"tieBroken"`
}

// LedgerReport is the result of a full chain verification.
type LedgerReport struct {
	Valid         bool   `json:"valid"`
	Blocks        int64  `json:"blocks"`
	HeadHash      string `json:"headHash,omitempty"`
	FailingHeight *int64 `json:"failingHeight,omitempty"`
	Reason        string `json:"reason,omitempty"`
}
