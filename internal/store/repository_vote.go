// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
	"github.com/jackc/pgerrcode"
)

// voteRepository is the PostgreSQL-backed implementation of
// [VoteRepository]. The votes table never references a profile; the
// nullifier → profile link lives in vote_settlements until finalization.
type voteRepository struct {
	*DB
	logger *logger.Logger
}

func NewVoteRepository(db *DB, logger *logger.Logger) VoteRepository {
	return &voteRepository{
		DB:     db,
		logger: logger,
	}
}

// CastVote inserts the vote while holding a shared lock on the rumor row, so
// locking and finalization wait for in-flight casts and no vote can land on
// a rumor that is no longer active.
//
// Error handling:
//   - rumor is not active → [voting.ErrVotingClosed] or [voting.ErrRumorFinal].
//   - an alias of the nullifier exists → [ErrAlreadyVoted].
//   - PostgreSQL unique_violation (23505) on the nullifier → [ErrAlreadyVoted].
//   - the voter's key was replaced → [ErrKeyNotCurrent].
//
// The profile row is locked together with the voter's key hash, so a recovery
// of the same profile either waits for this vote and aliases it, or has
// already replaced the key and the vote is refused.
func (v *voteRepository) CastVote(ctx context.Context, vote models.Vote, voter Voter, now time.Time) (models.Tally, error) {
	log := logger.FromContext(ctx).With().Str("rumor_id", vote.RumorID).Logger()

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to begin transaction")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var holder string
	err = tx.QueryRowContext(ctx, selectVoterForUpdate, voter.ProfileID, voter.KeyHash).Scan(&holder)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tally{}, ErrKeyNotCurrent
	}
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to lock voter profile")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rumor, err := scanRumorHeader(tx.QueryRowContext(ctx, selectRumorForShare, vote.RumorID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tally{}, ErrRumorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to read rumor")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if err = voting.AcceptsVotes(rumor, now); err != nil {
		return models.Tally{}, err
	}

	var aliased bool
	if err = tx.QueryRowContext(ctx, aliasExists, vote.Nullifier, vote.RumorID).Scan(&aliased); err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to check aliases")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if aliased {
		return models.Tally{}, ErrAlreadyVoted
	}

	_, err = tx.ExecContext(ctx, insertVote, vote.Nullifier, vote.RumorID, string(vote.VoteType), vote.Weight, vote.IsWithinArea, vote.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Tally{}, ErrAlreadyVoted
		}
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to insert vote")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, insertSettlement, vote.Nullifier, voter.ProfileID); err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to link vote for settlement")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, countCastVote, voter.ProfileID, now); err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to count vote")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	tally, err := scanTally(tx.QueryRowContext(ctx, selectTally, vote.RumorID))
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to read tally")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*voteRepository.CastVote").Msg("failed to commit transaction")
		return models.Tally{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return tally, nil
}

func (v *voteRepository) FindVote(ctx context.Context, nullifier, rumorID string) (models.Vote, error) {
	log := logger.FromContext(ctx)

	vote, err := scanVote(v.DB.QueryRowContext(ctx, findVote, nullifier, rumorID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, ErrVoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.FindVote").Str("rumor_id", rumorID).Msg("failed to read vote")
		return models.Vote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return vote, nil
}
