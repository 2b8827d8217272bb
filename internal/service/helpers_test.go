// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

const (
	testPepper = "pepper"
	keyA       = "a3f1c2d4e5b60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
	keyB       = "0000000000000000000000000000000000000000000000000000000000000b0b"
)

var testNow = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() Clock {
	return func() time.Time { return testNow }
}

func testHasher() *identity.KeyHasher {
	return identity.NewKeyHasher(testPepper)
}

type staticID string

func (s staticID) Generate() string { return string(s) }

// ─────────────────────────────────────────────
// Recording publisher
// ─────────────────────────────────────────────

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
}

func (p *recordingPublisher) Publish(e models.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []models.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func activeRumor(id string) models.Rumor {
	return models.Rumor{
		ID:           id,
		PosterID:     "poster",
		Content:      "The cafeteria is closing",
		AreaOfVote:   models.AreaSEECS,
		PostedAt:     testNow.Add(-time.Hour),
		VotingEndsAt: testNow.Add(time.Hour),
	}
}

func lockedRumor(id string) models.Rumor {
	r := activeRumor(id)
	r.VotingEndsAt = testNow.Add(-time.Minute)
	r.IsLocked = true
	return r
}

func testPolicy() voting.Policy {
	return voting.DefaultPolicy()
}
