// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/vera-node/internal/ledger"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
)

// rumorRepository is the PostgreSQL-backed implementation of
// [RumorRepository]. Lifecycle transitions are single conditional UPDATEs;
// finalization is one transaction that also writes profiles and the ledger.
type rumorRepository struct {
	*DB
	logger *logger.Logger
}

func NewRumorRepository(db *DB, logger *logger.Logger) RumorRepository {
	return &rumorRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *rumorRepository) CreateRumor(ctx context.Context, rumor models.Rumor) (models.Rumor, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.CreateRumor").Msg("failed to begin transaction")
		return models.Rumor{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertRumor, rumor.ID, rumor.PosterID, rumor.Content, string(rumor.AreaOfVote), rumor.PostedAt, rumor.VotingEndsAt)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.CreateRumor").Msg("failed to insert rumor")
		return models.Rumor{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, countPostedRumor, rumor.PosterID, rumor.PostedAt)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.CreateRumor").Msg("failed to count posted rumor")
		return models.Rumor{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Rumor{}, ErrProfileNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*rumorRepository.CreateRumor").Msg("failed to commit transaction")
		return models.Rumor{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return rumor, nil
}

func (r *rumorRepository) GetRumor(ctx context.Context, id string) (models.Rumor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRumorQuery(ctx, id)
	if err != nil {
		return models.Rumor{}, err
	}

	rumor, err := scanRumor(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rumor{}, ErrRumorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.GetRumor").Str("rumor_id", id).Msg("failed to read rumor")
		return models.Rumor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rumor, nil
}

func (r *rumorRepository) ListRumors(ctx context.Context, filter models.RumorFilter, now time.Time) ([]models.Rumor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRumorsQuery(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.ListRumors").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	rumors := make([]models.Rumor, 0, 50)
	for rows.Next() {
		rumor, scanErr := scanRumor(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*rumorRepository.ListRumors").Msg("failed to scan rumor row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		rumors = append(rumors, rumor)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*rumorRepository.ListRumors").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rumors, nil
}

func (r *rumorRepository) LockRumor(ctx context.Context, id string, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, lockRumor, id, now)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.LockRumor").Str("rumor_id", id).Msg("failed to lock rumor")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n == 1, nil
}

func (r *rumorRepository) LockExpired(ctx context.Context, now time.Time) ([]string, error) {
	return r.selectIDs(ctx, "*rumorRepository.LockExpired", lockExpiredRumors, now)
}

func (r *rumorRepository) ListFinalizable(ctx context.Context, now time.Time, limit uint64) ([]string, error) {
	return r.selectIDs(ctx, "*rumorRepository.ListFinalizable", listFinalizableRumors, now, limit)
}

func (r *rumorRepository) selectIDs(ctx context.Context, fn, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// FinalizeRumor runs the whole settlement of one rumor in a single
// transaction:
//
//  1. lock the rumor row; a final rumor is returned unchanged
//  2. require the rumor to be locked or past its deadline
//  3. read its votes and, under the ledger lock, the chain head
//  4. let settle decide and build the block
//  5. apply voter and poster deltas, blocking profiles at the threshold
//  6. append the block, mark the rumor final, drop the settlement links
func (r *rumorRepository) FinalizeRumor(ctx context.Context, id string, now time.Time, settle SettleFunc) (models.Rumor, bool, error) {
	log := logger.FromContext(ctx).With().Str("rumor_id", id).Logger()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to begin transaction")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rumor, err := scanRumorHeader(tx.QueryRowContext(ctx, selectRumorForUpdate, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rumor{}, false, ErrRumorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to lock rumor row")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if rumor.IsFinal {
		// release the row lock before reading the stored state
		tx.Rollback()
		final, getErr := r.GetRumor(ctx, id)
		return final, false, getErr
	}
	if voting.StateOf(rumor, now) != models.StateLocked {
		return models.Rumor{}, false, voting.ErrRumorNotLocked
	}

	votes, err := r.rumorVotes(ctx, tx, id)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to read votes")
		return models.Rumor{}, false, err
	}

	if _, err = tx.ExecContext(ctx, lockLedger, ledgerLockKey); err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to take ledger lock")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	head, err := readHead(ctx, tx)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to read ledger head")
		return models.Rumor{}, false, err
	}

	settlement, err := settle(rumor, votes, head)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("settlement failed")
		return models.Rumor{}, false, err
	}

	if err = r.applyDeltas(ctx, tx, rumor, settlement, now); err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to apply reputation deltas")
		return models.Rumor{}, false, err
	}

	block := settlement.Block
	_, err = tx.ExecContext(ctx, insertLedgerBlock, block.Height, block.RumorID, block.Content, string(block.Decision), block.VotingData, block.PreviousHash, block.CurrentHash, block.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to append ledger block")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	_, err = tx.ExecContext(ctx, markRumorFinal, id, now, string(settlement.Decision), block.PreviousHash, block.CurrentHash)
	if err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to mark rumor final")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, deleteSettlements, id); err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to delete settlement links")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*rumorRepository.FinalizeRumor").Msg("failed to commit transaction")
		return models.Rumor{}, false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if rumor.LockedAt == nil {
		rumor.LockedAt = &now
	}
	rumor.IsLocked = true
	rumor.IsFinal = true
	rumor.FinalizedAt = &now
	rumor.FinalDecision = settlement.Decision.Ptr()
	rumor.PreviousHash = block.PreviousHash
	rumor.CurrentHash = block.CurrentHash
	rumor.Tally = settlement.Tally

	log.Info().Str("decision", string(settlement.Decision)).Int64("height", block.Height).Msg("rumor finalized")
	return rumor, true, nil
}

func (r *rumorRepository) rumorVotes(ctx context.Context, tx *sql.Tx, rumorID string) ([]models.Vote, error) {
	rows, err := tx.QueryContext(ctx, selectRumorVotes, rumorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		v, scanErr := scanVote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		votes = append(votes, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return votes, nil
}

// applyDeltas pays out every voter through the settlement links, then the
// poster. Nullifiers without a link (none are expected) change nothing.
func (r *rumorRepository) applyDeltas(ctx context.Context, tx *sql.Tx, rumor models.Rumor, s models.Settlement, now time.Time) error {
	stmt, err := tx.PrepareContext(ctx, applyVoterDelta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, nullifier := range slices.Sorted(maps.Keys(s.VoterDeltas)) {
		delta := s.VoterDeltas[nullifier]
		var correct, incorrect int
		if s.Correct(nullifier) {
			correct = 1
		} else {
			incorrect = 1
		}
		if _, err = stmt.ExecContext(ctx, nullifier, delta, correct, incorrect, s.BlockThreshold, now); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err = tx.ExecContext(ctx, applyPosterDelta, rumor.PosterID, s.PosterDelta, s.BlockThreshold, now); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// readHead returns the chain tip, or genesis for an empty chain.
func readHead(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}) (models.LedgerHead, error) {
	var head models.LedgerHead
	err := q.QueryRowContext(ctx, selectLedgerHead).Scan(&head.Height, &head.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Genesis(), nil
	}
	if err != nil {
		return models.LedgerHead{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return head, nil
}
