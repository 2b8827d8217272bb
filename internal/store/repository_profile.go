// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/models"
	"github.com/jackc/pgerrcode"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "profiles" and "profile_keys" tables.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile persists a new profile and returns it as stored.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrProfileAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile, profile.ID, profile.SecretKeyHash, string(profile.Area), profile.KeyExpiresAt, profile.CreatedAt)

	created, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error creating profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Profile{}, ErrProfileAlreadyExists
		default:
			return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *profileRepository) FindProfileByID(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, findProfileByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByID").Str("profile_id", id).Msg("error finding profile")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// FindProfileByKeyHash matches the current key first. On a miss the key
// history decides between [ErrKeyRetired] and [ErrProfileNotFound].
func (r *profileRepository) FindProfileByKeyHash(ctx context.Context, keyHash string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, findProfileByKeyHash, keyHash))
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*profileRepository.FindProfileByKeyHash").Msg("error finding profile")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var retired bool
	if err = r.db.QueryRowContext(ctx, isKeyRetired, keyHash).Scan(&retired); err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByKeyHash").Msg("error checking key history")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if retired {
		return models.Profile{}, ErrKeyRetired
	}

	return models.Profile{}, ErrProfileNotFound
}

// Rekey retires the old key, installs the new one and writes a nullifier
// alias for every vote of the profile that has not been settled yet. Either
// all of it happens or nothing does.
func (r *profileRepository) Rekey(ctx context.Context, rekey Rekey) (models.Profile, error) {
	log := logger.FromContext(ctx).With().Str("profile_id", rekey.ProfileID).Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Rekey").Msg("failed to begin transaction")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, retireKey, rekey.OldKeyHash, rekey.ProfileID, rekey.Now); err != nil {
		log.Err(err).Str("func", "*profileRepository.Rekey").Msg("failed to retire key")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Profile{}, ErrKeyRetired
		}
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	profile, err := scanProfile(tx.QueryRowContext(ctx, replaceKey, rekey.ProfileID, rekey.OldKeyHash, rekey.NewKeyHash, rekey.KeyExpiresAt, rekey.Now))
	if errors.Is(err, sql.ErrNoRows) {
		// the key was replaced concurrently
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Rekey").Msg("failed to replace key")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	unsettled, err := r.unsettledVotes(ctx, tx, rekey.ProfileID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Rekey").Msg("failed to read unsettled votes")
		return models.Profile{}, err
	}

	for _, v := range unsettled {
		if _, err = tx.ExecContext(ctx, insertAlias, rekey.AliasFor(v.RumorID), v.Nullifier, v.RumorID); err != nil {
			log.Err(err).Str("func", "*profileRepository.Rekey").Str("rumor_id", v.RumorID).Msg("failed to alias vote")
			return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*profileRepository.Rekey").Msg("failed to commit transaction")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Int("aliased_votes", len(unsettled)).Msg("profile re-keyed")
	return profile, nil
}

// unsettledVotes reads all rows before returning so the transaction's
// connection is free for the following statements.
func (r *profileRepository) unsettledVotes(ctx context.Context, tx *sql.Tx, profileID string) ([]models.Vote, error) {
	rows, err := tx.QueryContext(ctx, selectUnsettledVotes, profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err = rows.Scan(&v.Nullifier, &v.RumorID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		votes = append(votes, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return votes, nil
}

// Unblock clears the blocked flag. Points are left as they are, so a
// further loss below the threshold blocks the profile again.
func (r *profileRepository) Unblock(ctx context.Context, profileID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, unblockProfile, profileID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Unblock").Str("profile_id", profileID).Msg("error unblocking profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}

func (r *profileRepository) ListBlocked(ctx context.Context) ([]models.BlockedProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBlockedProfiles)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.ListBlocked").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blocked := make([]models.BlockedProfile, 0, 16)
	for rows.Next() {
		var p models.BlockedProfile
		if err = rows.Scan(&p.ID, &p.Area, &p.Points, &p.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*profileRepository.ListBlocked").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		blocked = append(blocked, p)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.ListBlocked").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blocked, nil
}
