// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/models"
)

const profileColumns = `id, secret_key_hash, area, points, is_blocked, key_expires_at,
	rumors_posted, votes_cast, correct_votes, incorrect_votes, created_at, updated_at`

const (
	createProfile = `INSERT INTO profiles (id, secret_key_hash, area, points, key_expires_at, created_at, updated_at)
    VALUES ($1, $2, $3, 0, $4, $5, $5)
    RETURNING ` + profileColumns + `;`

	findProfileByID = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE id = $1;`

	findProfileByKeyHash = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE secret_key_hash = $1;`

	isKeyRetired = `SELECT EXISTS (SELECT 1 FROM profile_keys WHERE key_hash = $1);`

	retireKey = `INSERT INTO profile_keys (key_hash, profile_id, retired_at)
    VALUES ($1, $2, $3);`

	replaceKey = `UPDATE profiles
    SET secret_key_hash = $3, key_expires_at = $4, updated_at = $5
    WHERE id = $1 AND secret_key_hash = $2
    RETURNING ` + profileColumns + `;`

	selectUnsettledVotes = `SELECT s.nullifier, v.rumor_id
    FROM vote_settlements s
    JOIN votes v ON v.nullifier = s.nullifier
    WHERE s.profile_id = $1;`

	insertAlias = `INSERT INTO nullifier_aliases (alias, nullifier, rumor_id)
    VALUES ($1, $2, $3)
    ON CONFLICT (alias) DO NOTHING;`

	unblockProfile = `UPDATE profiles
    SET is_blocked = FALSE, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + profileColumns + `;`

	listBlockedProfiles = `SELECT id, area, points, updated_at
    FROM profiles
    WHERE is_blocked
    ORDER BY updated_at DESC;`
)

const (
	insertRumor = `INSERT INTO rumors (id, poster_id, content, area_of_vote, posted_at, voting_ends_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	countPostedRumor = `UPDATE profiles
    SET rumors_posted = rumors_posted + 1, updated_at = $2
    WHERE id = $1;`

	lockRumor = `UPDATE rumors
    SET is_locked = TRUE, locked_at = $2
    WHERE id = $1 AND NOT is_locked AND NOT is_final;`

	lockExpiredRumors = `UPDATE rumors
    SET is_locked = TRUE, locked_at = voting_ends_at
    WHERE NOT is_locked AND NOT is_final AND voting_ends_at <= $1
    RETURNING id;`

	listFinalizableRumors = `SELECT id
    FROM rumors
    WHERE NOT is_final AND (is_locked OR voting_ends_at <= $1)
    ORDER BY voting_ends_at
    LIMIT $2;`

	selectRumorForUpdate = `SELECT id, poster_id, content, area_of_vote, posted_at, voting_ends_at, is_locked, is_final
    FROM rumors
    WHERE id = $1
    FOR UPDATE;`

	selectRumorForShare = `SELECT id, poster_id, content, area_of_vote, posted_at, voting_ends_at, is_locked, is_final
    FROM rumors
    WHERE id = $1
    FOR SHARE;`

	selectRumorVotes = `SELECT nullifier, rumor_id, vote_type, weight, is_within_area, created_at
    FROM votes
    WHERE rumor_id = $1
    ORDER BY created_at, nullifier;`

	// ledgerLockKey serializes appends to the global chain.
	ledgerLockKey = 7_263_453

	lockLedger = `SELECT pg_advisory_xact_lock($1);`

	applyVoterDelta = `UPDATE profiles p
    SET points          = p.points + $2,
        correct_votes   = p.correct_votes + $3,
        incorrect_votes = p.incorrect_votes + $4,
        is_blocked      = p.is_blocked OR p.points + $2 <= $5,
        updated_at      = $6
    FROM vote_settlements s
    WHERE s.nullifier = $1 AND s.profile_id = p.id;`

	applyPosterDelta = `UPDATE profiles
    SET points     = points + $2,
        is_blocked = is_blocked OR points + $2 <= $3,
        updated_at = $4
    WHERE id = $1;`

	insertLedgerBlock = `INSERT INTO ledger_blocks (height, rumor_id, content, decision, voting_data, previous_hash, current_hash, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	markRumorFinal = `UPDATE rumors
    SET is_locked      = TRUE,
        locked_at      = COALESCE(locked_at, $2),
        is_final       = TRUE,
        finalized_at   = $2,
        final_decision = $3,
        previous_hash  = $4,
        current_hash   = $5
    WHERE id = $1 AND NOT is_final;`

	deleteSettlements = `DELETE FROM vote_settlements
    WHERE nullifier IN (SELECT nullifier FROM votes WHERE rumor_id = $1);`
)

const (
	// the cast also updates the profile, so its row lock is taken up front
	selectVoterForUpdate = `SELECT id FROM profiles WHERE id = $1 AND secret_key_hash = $2 FOR NO KEY UPDATE;`

	aliasExists = `SELECT EXISTS (SELECT 1 FROM nullifier_aliases WHERE alias = $1 AND rumor_id = $2);`

	insertVote = `INSERT INTO votes (nullifier, rumor_id, vote_type, weight, is_within_area, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	insertSettlement = `INSERT INTO vote_settlements (nullifier, profile_id)
    VALUES ($1, $2);`

	countCastVote = `UPDATE profiles
    SET votes_cast = votes_cast + 1, updated_at = $2
    WHERE id = $1;`

	selectTally = `SELECT total_votes, fact_votes, lie_votes, fact_weight, lie_weight, under_area_votes, not_under_area_votes
    FROM rumor_tallies
    WHERE rumor_id = $1;`

	findVote = `SELECT v.nullifier, v.rumor_id, v.vote_type, v.weight, v.is_within_area, v.created_at
    FROM votes v
    WHERE v.rumor_id = $2
      AND (v.nullifier = $1
        OR v.nullifier = (SELECT a.nullifier FROM nullifier_aliases a WHERE a.alias = $1 AND a.rumor_id = $2));`
)

const (
	selectLedgerHead = `SELECT height, current_hash
    FROM ledger_blocks
    ORDER BY height DESC
    LIMIT 1;`

	countLedgerBlocks = `SELECT COUNT(*) FROM ledger_blocks;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rumorColumns is the select list matched by scanRumor.
var rumorColumns = []string{
	"r.id",
	"r.poster_id",
	"r.content",
	"r.area_of_vote",
	"r.posted_at",
	"r.voting_ends_at",
	"r.is_locked",
	"r.locked_at",
	"r.is_final",
	"r.finalized_at",
	"r.final_decision",
	"COALESCE(r.previous_hash, '')",
	"COALESCE(r.current_hash, '')",
	"COALESCE(t.total_votes, 0)",
	"COALESCE(t.fact_votes, 0)",
	"COALESCE(t.lie_votes, 0)",
	"COALESCE(t.fact_weight, 0)",
	"COALESCE(t.lie_weight, 0)",
	"COALESCE(t.under_area_votes, 0)",
	"COALESCE(t.not_under_area_votes, 0)",
}

func selectRumors() sq.SelectBuilder {
	return psql.Select(rumorColumns...).
		From("rumors r").
		LeftJoin("rumor_tallies t ON t.rumor_id = r.id")
}

func buildGetRumorQuery(ctx context.Context, id string) (string, []any, error) {
	query, args, err := selectRumors().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildGetRumorQuery").Msg("error building query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListRumorsQuery selects rumors matching filter, newest first. The
// state predicates mirror voting.StateOf at the given moment.
func buildListRumorsQuery(ctx context.Context, filter models.RumorFilter, now time.Time) (string, []any, error) {
	q := selectRumors().OrderBy("r.posted_at DESC", "r.id")

	if filter.Area != "" {
		q = q.Where(sq.Eq{"r.area_of_vote": string(filter.Area)})
	}
	if filter.PosterID != "" {
		q = q.Where(sq.Eq{"r.poster_id": filter.PosterID})
	}

	switch filter.State {
	case models.StateActive:
		q = q.Where("NOT r.is_final AND NOT r.is_locked AND r.voting_ends_at > ?", now)
	case models.StateLocked:
		q = q.Where("NOT r.is_final AND (r.is_locked OR r.voting_ends_at <= ?)", now)
	case models.StateFinal:
		q = q.Where("r.is_final")
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	query, args, err := q.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildListRumorsQuery").Msg("error building query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListBlocksQuery(ctx context.Context, fromHeight int64, limit uint64) (string, []any, error) {
	q := psql.Select("height", "rumor_id", "content", "decision", "voting_data", "previous_hash", "current_hash", "created_at").
		From("ledger_blocks").
		Where(sq.GtOrEq{"height": fromHeight}).
		OrderBy("height")
	if limit > 0 {
		q = q.Limit(limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildListBlocksQuery").Msg("error building query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildAdminStatsQuery counts everything on the admin dashboard in a single
// row.
func buildAdminStatsQuery(ctx context.Context, now time.Time) (string, []any, error) {
	q := psql.Select().
		Column("(SELECT COUNT(*) FROM profiles) AS users_total").
		Column("(SELECT COUNT(*) FROM profiles WHERE is_blocked) AS users_blocked").
		Column("(SELECT COUNT(*) FROM rumors) AS rumors_total").
		Column(sq.Expr("(SELECT COUNT(*) FROM rumors WHERE NOT is_final AND NOT is_locked AND voting_ends_at > ?) AS rumors_active", now)).
		Column(sq.Expr("(SELECT COUNT(*) FROM rumors WHERE NOT is_final AND (is_locked OR voting_ends_at <= ?)) AS rumors_locked", now)).
		Column("(SELECT COUNT(*) FROM rumors WHERE is_final) AS rumors_final").
		Column("(SELECT COUNT(*) FROM votes) AS votes_total").
		Column("(SELECT COUNT(*) FROM votes v JOIN rumors r ON r.id = v.rumor_id WHERE NOT r.is_final) AS votes_active").
		Column("(SELECT COUNT(*) FROM ledger_blocks) AS blocks_total")

	query, args, err := q.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildAdminStatsQuery").Msg("error building query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
