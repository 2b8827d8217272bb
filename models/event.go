// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a lifecycle notification on the live feed.
type EventType string

const (
	EventRumorCreated   EventType = "rumor.created"
	EventRumorLocked    EventType = "rumor.locked"
	EventRumorFinalized EventType = "rumor.finalized"
)

// Event is a lifecycle notification. It never carries stats or anything
// that could identify a voter.
type Event struct {
	Type      EventType  `json:"type"`
	RumorID   string     `json:"rumorId"`
	State     RumorState `json:"state"`
	Decision  *VoteType  `json:"decision,omitempty"`
	BlockHash string     `json:"blockHash,omitempty"`
	At        time.Time  `json:"at"`
}
