// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/vera-node/models"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.SecretKeyHash,
		&p.Area,
		&p.Points,
		&p.IsBlocked,
		&p.KeyExpiresAt,
		&p.RumorsPosted,
		&p.VotesCast,
		&p.CorrectVotes,
		&p.IncorrectVotes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// scanRumor reads a row selected with rumorColumns.
func scanRumor(row scanner) (models.Rumor, error) {
	var (
		r           models.Rumor
		lockedAt    sql.NullTime
		finalizedAt sql.NullTime
		decision    sql.NullString
	)

	err := row.Scan(
		&r.ID,
		&r.PosterID,
		&r.Content,
		&r.AreaOfVote,
		&r.PostedAt,
		&r.VotingEndsAt,
		&r.IsLocked,
		&lockedAt,
		&r.IsFinal,
		&finalizedAt,
		&decision,
		&r.PreviousHash,
		&r.CurrentHash,
		&r.Tally.TotalVotes,
		&r.Tally.FactVotes,
		&r.Tally.LieVotes,
		&r.Tally.FactWeight,
		&r.Tally.LieWeight,
		&r.Tally.UnderAreaVotes,
		&r.Tally.NotUnderAreaVotes,
	)
	if err != nil {
		return models.Rumor{}, err
	}

	if lockedAt.Valid {
		r.LockedAt = &lockedAt.Time
	}
	if finalizedAt.Valid {
		r.FinalizedAt = &finalizedAt.Time
	}
	if decision.Valid {
		r.FinalDecision = models.VoteType(decision.String).Ptr()
	}

	return r, nil
}

// scanRumorHeader reads the columns of selectRumorForUpdate and
// selectRumorForShare.
func scanRumorHeader(row scanner) (models.Rumor, error) {
	var r models.Rumor
	err := row.Scan(&r.ID, &r.PosterID, &r.Content, &r.AreaOfVote, &r.PostedAt, &r.VotingEndsAt, &r.IsLocked, &r.IsFinal)
	return r, err
}

func scanVote(row scanner) (models.Vote, error) {
	var v models.Vote
	err := row.Scan(&v.Nullifier, &v.RumorID, &v.VoteType, &v.Weight, &v.IsWithinArea, &v.CreatedAt)
	return v, err
}

func scanTally(row scanner) (models.Tally, error) {
	var t models.Tally
	err := row.Scan(&t.TotalVotes, &t.FactVotes, &t.LieVotes, &t.FactWeight, &t.LieWeight, &t.UnderAreaVotes, &t.NotUnderAreaVotes)
	return t, err
}

func scanBlock(row scanner) (models.LedgerBlock, error) {
	var b models.LedgerBlock
	err := row.Scan(&b.Height, &b.RumorID, &b.Content, &b.Decision, &b.VotingData, &b.PreviousHash, &b.CurrentHash, &b.CreatedAt)
	return b, err
}
