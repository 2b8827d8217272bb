// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/vera-node/internal/ledger"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

// memStore is an in-memory stand-in for the PostgreSQL repositories with
// the same transactional guarantees: every method runs under one mutex.
type memStore struct {
	mu sync.Mutex

	profiles    map[string]*models.Profile
	keyIndex    map[string]string
	retired     map[string]bool
	rumors      map[string]*models.Rumor
	votes       map[string]models.Vote
	settlements map[string]string
	aliases     map[string]string
	blocks      []models.LedgerBlock
}

var (
	_ store.ProfileRepository = (*memStore)(nil)
	_ store.RumorRepository   = (*memStore)(nil)
	_ store.VoteRepository    = (*memStore)(nil)
	_ store.LedgerRepository  = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		profiles:    map[string]*models.Profile{},
		keyIndex:    map[string]string{},
		retired:     map[string]bool{},
		rumors:      map[string]*models.Rumor{},
		votes:       map[string]models.Vote{},
		settlements: map[string]string{},
		aliases:     map[string]string{},
	}
}

// ─────────────────────────────────────────────
// ProfileRepository
// ─────────────────────────────────────────────

func (m *memStore) CreateProfile(_ context.Context, p models.Profile) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.keyIndex[p.SecretKeyHash]; ok {
		return models.Profile{}, store.ErrProfileAlreadyExists
	}
	m.profiles[p.ID] = &p
	m.keyIndex[p.SecretKeyHash] = p.ID
	return p, nil
}

func (m *memStore) FindProfileByID(_ context.Context, id string) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	return *p, nil
}

func (m *memStore) FindProfileByKeyHash(_ context.Context, keyHash string) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.retired[keyHash] {
		return models.Profile{}, store.ErrKeyRetired
	}
	id, ok := m.keyIndex[keyHash]
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	return *m.profiles[id], nil
}

func (m *memStore) Rekey(_ context.Context, r store.Rekey) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[r.ProfileID]
	if !ok || p.SecretKeyHash != r.OldKeyHash {
		return models.Profile{}, store.ErrProfileNotFound
	}
	if m.retired[r.NewKeyHash] {
		return models.Profile{}, store.ErrKeyRetired
	}

	m.retired[r.OldKeyHash] = true
	delete(m.keyIndex, r.OldKeyHash)
	m.keyIndex[r.NewKeyHash] = p.ID
	p.SecretKeyHash = r.NewKeyHash
	p.KeyExpiresAt = r.KeyExpiresAt
	p.UpdatedAt = r.Now

	for nullifier, owner := range m.settlements {
		if owner == p.ID {
			m.aliases[r.AliasFor(m.votes[nullifier].RumorID)] = nullifier
		}
	}
	return *p, nil
}

func (m *memStore) Unblock(_ context.Context, id string) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return models.Profile{}, store.ErrProfileNotFound
	}
	p.IsBlocked = false
	return *p, nil
}

func (m *memStore) ListBlocked(context.Context) ([]models.BlockedProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.BlockedProfile
	for _, p := range m.profiles {
		if p.IsBlocked {
			out = append(out, models.BlockedProfile{ID: p.ID, Area: p.Area, Points: p.Points, UpdatedAt: p.UpdatedAt})
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────
// RumorRepository
// ─────────────────────────────────────────────

func (m *memStore) CreateRumor(_ context.Context, r models.Rumor) (models.Rumor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[r.PosterID]
	if !ok {
		return models.Rumor{}, store.ErrProfileNotFound
	}
	p.RumorsPosted++
	m.rumors[r.ID] = &r
	return r, nil
}

func (m *memStore) GetRumor(_ context.Context, id string) (models.Rumor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rumorLocked(id)
}

func (m *memStore) rumorLocked(id string) (models.Rumor, error) {
	r, ok := m.rumors[id]
	if !ok {
		return models.Rumor{}, store.ErrRumorNotFound
	}
	out := *r
	out.Tally = m.tally(id)
	return out, nil
}

func (m *memStore) ListRumors(_ context.Context, f models.RumorFilter, now time.Time) ([]models.Rumor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Rumor
	for id, r := range m.rumors {
		if (f.Area != "" && r.AreaOfVote != f.Area) || (f.PosterID != "" && r.PosterID != f.PosterID) {
			continue
		}
		if f.State != "" && voting.StateOf(*r, now) != f.State {
			continue
		}
		rumor, _ := m.rumorLocked(id)
		out = append(out, rumor)
	}
	slices.SortFunc(out, func(a, b models.Rumor) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (m *memStore) LockRumor(_ context.Context, id string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rumors[id]
	if !ok || r.IsLocked || r.IsFinal {
		return false, nil
	}
	r.IsLocked = true
	r.LockedAt = &now
	return true, nil
}

func (m *memStore) LockExpired(_ context.Context, now time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for _, id := range slices.Sorted(maps.Keys(m.rumors)) {
		r := m.rumors[id]
		if !r.IsLocked && !r.IsFinal && !now.Before(r.VotingEndsAt) {
			r.IsLocked = true
			endsAt := r.VotingEndsAt
			r.LockedAt = &endsAt
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) ListFinalizable(_ context.Context, now time.Time, limit uint64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for _, id := range slices.Sorted(maps.Keys(m.rumors)) {
		if voting.StateOf(*m.rumors[id], now) == models.StateLocked && uint64(len(ids)) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) FinalizeRumor(_ context.Context, id string, now time.Time, settle store.SettleFunc) (models.Rumor, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rumors[id]
	if !ok {
		return models.Rumor{}, false, store.ErrRumorNotFound
	}
	if r.IsFinal {
		out, _ := m.rumorLocked(id)
		return out, false, nil
	}
	if voting.StateOf(*r, now) != models.StateLocked {
		return models.Rumor{}, false, voting.ErrRumorNotLocked
	}

	votes := m.rumorVotes(id)
	st, err := settle(*r, votes, m.head())
	if err != nil {
		return models.Rumor{}, false, err
	}

	for _, nullifier := range slices.Sorted(maps.Keys(st.VoterDeltas)) {
		p := m.profiles[m.settlements[nullifier]]
		delta := st.VoterDeltas[nullifier]
		p.Points += delta
		if st.Correct(nullifier) {
			p.CorrectVotes++
		} else {
			p.IncorrectVotes++
		}
		if p.Points <= st.BlockThreshold {
			p.IsBlocked = true
		}
	}
	if poster, ok := m.profiles[r.PosterID]; ok {
		poster.Points += st.PosterDelta
		if poster.Points <= st.BlockThreshold {
			poster.IsBlocked = true
		}
	}

	m.blocks = append(m.blocks, st.Block)
	r.IsLocked = true
	r.IsFinal = true
	r.FinalizedAt = &now
	r.FinalDecision = st.Decision.Ptr()
	r.PreviousHash = st.Block.PreviousHash
	r.CurrentHash = st.Block.CurrentHash
	for _, v := range votes {
		delete(m.settlements, v.Nullifier)
	}

	out, _ := m.rumorLocked(id)
	return out, true, nil
}

// ─────────────────────────────────────────────
// VoteRepository
// ─────────────────────────────────────────────

func (m *memStore) CastVote(_ context.Context, v models.Vote, voter store.Voter, now time.Time) (models.Tally, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profileID := voter.ProfileID
	if p, ok := m.profiles[profileID]; !ok || p.SecretKeyHash != voter.KeyHash {
		return models.Tally{}, store.ErrKeyNotCurrent
	}

	r, ok := m.rumors[v.RumorID]
	if !ok {
		return models.Tally{}, store.ErrRumorNotFound
	}
	if err := voting.AcceptsVotes(*r, now); err != nil {
		return models.Tally{}, err
	}
	if _, ok = m.aliases[v.Nullifier]; ok {
		return models.Tally{}, store.ErrAlreadyVoted
	}
	if _, ok = m.votes[v.Nullifier]; ok {
		return models.Tally{}, store.ErrAlreadyVoted
	}

	m.votes[v.Nullifier] = v
	m.settlements[v.Nullifier] = profileID
	m.profiles[profileID].VotesCast++
	return m.tally(v.RumorID), nil
}

func (m *memStore) FindVote(_ context.Context, nullifier, rumorID string) (models.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if original, ok := m.aliases[nullifier]; ok {
		nullifier = original
	}
	v, ok := m.votes[nullifier]
	if !ok || v.RumorID != rumorID {
		return models.Vote{}, store.ErrVoteNotFound
	}
	return v, nil
}

// ─────────────────────────────────────────────
// LedgerRepository
// ─────────────────────────────────────────────

func (m *memStore) Head(context.Context) (models.LedgerHead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.head(), nil
}

func (m *memStore) ListBlocks(_ context.Context, fromHeight int64, limit uint64) ([]models.LedgerBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.LedgerBlock
	for _, b := range m.blocks {
		if b.Height >= fromHeight && uint64(len(out)) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CountBlocks(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.blocks)), nil
}

// ─────────────────────────────────────────────
// internals, callers hold mu
// ─────────────────────────────────────────────

func (m *memStore) head() models.LedgerHead {
	return ledger.Head(m.blocks)
}

func (m *memStore) rumorVotes(rumorID string) []models.Vote {
	var out []models.Vote
	for _, n := range slices.Sorted(maps.Keys(m.votes)) {
		if v := m.votes[n]; v.RumorID == rumorID {
			out = append(out, v)
		}
	}
	return out
}

func (m *memStore) tally(rumorID string) models.Tally {
	var t models.Tally
	for _, v := range m.rumorVotes(rumorID) {
		t.Add(v)
	}
	return t
}

// points snapshots every profile's points by id.
func (m *memStore) points() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]float64, len(m.profiles))
	for id, p := range m.profiles {
		out[id] = p.Points
	}
	return out
}

func (m *memStore) setPoints(id string, points float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[id].Points = points
}
