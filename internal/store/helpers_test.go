// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

var testNow = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func profileRowColumns() []string {
	return []string{"id", "secret_key_hash", "area", "points", "is_blocked", "key_expires_at",
		"rumors_posted", "votes_cast", "correct_votes", "incorrect_votes", "created_at", "updated_at"}
}

func rumorRowColumns() []string {
	return []string{"id", "poster_id", "content", "area_of_vote", "posted_at", "voting_ends_at",
		"is_locked", "locked_at", "is_final", "finalized_at", "final_decision", "previous_hash", "current_hash",
		"total_votes", "fact_votes", "lie_votes", "fact_weight", "lie_weight", "under_area_votes", "not_under_area_votes"}
}

func rumorHeaderColumns() []string {
	return []string{"id", "poster_id", "content", "area_of_vote", "posted_at", "voting_ends_at", "is_locked", "is_final"}
}

func voteColumns() []string {
	return []string{"nullifier", "rumor_id", "vote_type", "weight", "is_within_area", "created_at"}
}
