// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vera-node/internal/ledger"
	"github.com/MKhiriev/vera-node/internal/voting"
	"github.com/MKhiriev/vera-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRumorRepo(t *testing.T) (*rumorRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &rumorRepository{DB: db, logger: db.logger}, mock
}

func testRumor() models.Rumor {
	return models.Rumor{
		ID:           "r1",
		PosterID:     "poster",
		Content:      "the library closes at noon",
		AreaOfVote:   models.AreaSEECS,
		PostedAt:     testNow.Add(-48 * time.Hour),
		VotingEndsAt: testNow.Add(-time.Hour),
	}
}

func headerRow(r models.Rumor, locked, final bool) *sqlmock.Rows {
	return sqlmock.NewRows(rumorHeaderColumns()).
		AddRow(r.ID, r.PosterID, r.Content, string(r.AreaOfVote), r.PostedAt, r.VotingEndsAt, locked, final)
}

// ─── CreateRumor ────────────────────────────────────────────────────────────

func TestCreateRumor_CountsPost(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rumors").
		WithArgs(r.ID, r.PosterID, r.Content, "SEECS", r.PostedAt, r.VotingEndsAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("rumors_posted = rumors_posted \\+ 1").
		WithArgs(r.PosterID, r.PostedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.CreateRumor(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRumor_UnknownPoster(t *testing.T) {
	repo, mock := newTestRumorRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rumors").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE profiles").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateRumor(context.Background(), testRumor())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Reads ──────────────────────────────────────────────────────────────────

func TestGetRumor_FinalScansDecision(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectQuery("FROM rumors r").
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(rumorRowColumns()).AddRow(
			r.ID, r.PosterID, r.Content, "SEECS", r.PostedAt, r.VotingEndsAt,
			true, r.VotingEndsAt, true, testNow, "FACT", ledger.GenesisHash, "abc",
			3, 2, 1, 17.0, 3.5, 2, 1,
		))

	got, err := repo.GetRumor(context.Background(), "r1")
	require.NoError(t, err)
	require.NotNil(t, got.FinalDecision)
	assert.Equal(t, models.VoteFact, *got.FinalDecision)
	require.NotNil(t, got.LockedAt)
	require.NotNil(t, got.FinalizedAt)
	assert.Equal(t, "abc", got.CurrentHash)
	assert.InDelta(t, 17.0, got.Tally.FactWeight, 1e-9)
	assert.Equal(t, int64(2), got.Tally.UnderAreaVotes)
}

func TestGetRumor_ActiveHasNoDecision(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectQuery("FROM rumors r").
		WillReturnRows(sqlmock.NewRows(rumorRowColumns()).AddRow(
			r.ID, r.PosterID, r.Content, "SEECS", r.PostedAt, r.VotingEndsAt,
			false, nil, false, nil, nil, "", "",
			0, 0, 0, 0.0, 0.0, 0, 0,
		))

	got, err := repo.GetRumor(context.Background(), "r1")
	require.NoError(t, err)
	assert.Nil(t, got.FinalDecision)
	assert.Nil(t, got.LockedAt)
	assert.Empty(t, got.CurrentHash)
}

func TestGetRumor_NotFound(t *testing.T) {
	repo, mock := newTestRumorRepo(t)

	mock.ExpectQuery("FROM rumors r").WillReturnRows(sqlmock.NewRows(rumorRowColumns()))

	_, err := repo.GetRumor(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRumorNotFound)
}

func TestListRumors(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectQuery("FROM rumors r").
		WithArgs("SEECS").
		WillReturnRows(sqlmock.NewRows(rumorRowColumns()).
			AddRow("r1", "p", "a", "SEECS", r.PostedAt, r.VotingEndsAt, false, nil, false, nil, nil, "", "", 0, 0, 0, 0.0, 0.0, 0, 0).
			AddRow("r2", "p", "b", "SEECS", r.PostedAt, r.VotingEndsAt, false, nil, false, nil, nil, "", "", 1, 1, 0, 2.5, 0.0, 1, 0))

	got, err := repo.ListRumors(context.Background(), models.RumorFilter{Area: models.AreaSEECS}, testNow)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[1].ID)
	assert.InDelta(t, 2.5, got[1].Tally.FactWeight, 1e-9)
}

func TestListRumors_QueryError(t *testing.T) {
	repo, mock := newTestRumorRepo(t)

	mock.ExpectQuery("FROM rumors r").WillReturnError(errors.New("boom"))

	_, err := repo.ListRumors(context.Background(), models.RumorFilter{}, testNow)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─── Locking ────────────────────────────────────────────────────────────────

func TestLockRumor(t *testing.T) {
	repo, mock := newTestRumorRepo(t)

	mock.ExpectExec("SET is_locked = TRUE").WithArgs("r1", testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET is_locked = TRUE").WithArgs("r1", testNow).WillReturnResult(sqlmock.NewResult(0, 0))

	locked, err := repo.LockRumor(context.Background(), "r1", testNow)
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = repo.LockRumor(context.Background(), "r1", testNow)
	require.NoError(t, err)
	assert.False(t, locked, "second lock is a no-op")
}

func TestLockExpired(t *testing.T) {
	repo, mock := newTestRumorRepo(t)

	mock.ExpectQuery("RETURNING id").
		WithArgs(testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r1").AddRow("r2"))

	ids, err := repo.LockExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

func TestListFinalizable(t *testing.T) {
	repo, mock := newTestRumorRepo(t)

	mock.ExpectQuery("WHERE NOT is_final").
		WithArgs(testNow, uint64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r9"))

	ids, err := repo.ListFinalizable(context.Background(), testNow, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"r9"}, ids)
}

// ─── FinalizeRumor ──────────────────────────────────────────────────────────

func settleWith(p voting.Policy, now time.Time) SettleFunc {
	return func(rumor models.Rumor, votes []models.Vote, head models.LedgerHead) (models.Settlement, error) {
		s, outcome := p.Settle(votes)
		block, err := ledger.NewBlock(rumor, outcome.Decision, models.VotingSnapshot{
			AreaOfVote:   rumor.AreaOfVote,
			VotingEndsAt: rumor.VotingEndsAt,
			Tally:        outcome.Tally,
			TieBroken:    outcome.TieBroken,
		}, head, now)
		s.Block = block
		return s, err
	}
}

func TestFinalizeRumor_AppliesSettlement(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()
	p := voting.DefaultPolicy()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnRows(headerRow(r, false, false))
	mock.ExpectQuery("FROM votes").WithArgs("r1").WillReturnRows(sqlmock.NewRows(voteColumns()).
		AddRow("A", "r1", "FACT", 16.0, true, testNow.Add(-30*time.Hour)).
		AddRow("B", "r1", "LIE", 3.5, false, testNow.Add(-20*time.Hour)).
		AddRow("C", "r1", "FACT", 1.0, true, testNow.Add(-10*time.Hour)))
	mock.ExpectExec("pg_advisory_xact_lock").WithArgs(ledgerLockKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM ledger_blocks").WillReturnRows(sqlmock.NewRows([]string{"height", "current_hash"}).AddRow(4, "prevhash"))

	voterStmt := mock.ExpectPrepare("UPDATE profiles p")
	voterStmt.ExpectExec().WithArgs("A", p.VoterDelta(true, 16), 1, 0, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	voterStmt.ExpectExec().WithArgs("B", p.VoterDelta(false, 3.5), 0, 1, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	voterStmt.ExpectExec().WithArgs("C", p.VoterDelta(true, 1), 1, 0, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("WHERE id = \\$1").WithArgs("poster", p.PosterFactReward, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ledger_blocks").
		WithArgs(int64(5), "r1", r.Content, "FACT", sqlmock.AnyArg(), "prevhash", sqlmock.AnyArg(), testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SET is_locked\s+= TRUE,`).
		WithArgs("r1", testNow, "FACT", "prevhash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM vote_settlements").WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	got, applied, err := repo.FinalizeRumor(context.Background(), "r1", testNow, settleWith(p, testNow))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, got.IsFinal)
	require.NotNil(t, got.FinalDecision)
	assert.Equal(t, models.VoteFact, *got.FinalDecision)
	assert.Equal(t, "prevhash", got.PreviousHash)
	assert.Len(t, got.CurrentHash, 64)
	assert.InDelta(t, 17.0, got.Tally.FactWeight, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeRumor_ZeroRewardCountsAgreeingVotersCorrect(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()
	p := voting.DefaultPolicy()
	p.CorrectVoteReward = 0
	p.WeightFactor = 0

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnRows(headerRow(r, false, false))
	mock.ExpectQuery("FROM votes").WithArgs("r1").WillReturnRows(sqlmock.NewRows(voteColumns()).
		AddRow("A", "r1", "FACT", 16.0, true, testNow.Add(-30*time.Hour)).
		AddRow("B", "r1", "LIE", 3.5, false, testNow.Add(-20*time.Hour)))
	mock.ExpectExec("pg_advisory_xact_lock").WithArgs(ledgerLockKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM ledger_blocks").WillReturnRows(sqlmock.NewRows([]string{"height", "current_hash"}).AddRow(4, "prevhash"))

	voterStmt := mock.ExpectPrepare("UPDATE profiles p")
	voterStmt.ExpectExec().WithArgs("A", 0.0, 1, 0, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	voterStmt.ExpectExec().WithArgs("B", p.VoterDelta(false, 3.5), 0, 1, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("WHERE id = \\$1").WithArgs("poster", p.PosterFactReward, p.BlockThreshold, testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ledger_blocks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SET is_locked\s+= TRUE,`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM vote_settlements").WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	_, applied, err := repo.FinalizeRumor(context.Background(), "r1", testNow, settleWith(p, testNow))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeRumor_AlreadyFinalIsNoOp(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("r1").WillReturnRows(headerRow(r, true, true))
	mock.ExpectRollback()
	mock.ExpectQuery("FROM rumors r").WithArgs("r1").WillReturnRows(sqlmock.NewRows(rumorRowColumns()).AddRow(
		r.ID, r.PosterID, r.Content, "SEECS", r.PostedAt, r.VotingEndsAt,
		true, r.VotingEndsAt, true, testNow, "LIE", ledger.GenesisHash, "h",
		0, 0, 0, 0.0, 0.0, 0, 0,
	))

	called := false
	got, applied, err := repo.FinalizeRumor(context.Background(), "r1", testNow, func(models.Rumor, []models.Vote, models.LedgerHead) (models.Settlement, error) {
		called = true
		return models.Settlement{}, nil
	})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.False(t, called, "settlement must not run twice")
	assert.Equal(t, models.VoteLie, *got.FinalDecision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeRumor_ActiveRumorRefused(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()
	r.VotingEndsAt = testNow.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(headerRow(r, false, false))
	mock.ExpectRollback()

	_, applied, err := repo.FinalizeRumor(context.Background(), "r1", testNow, settleWith(voting.DefaultPolicy(), testNow))
	assert.ErrorIs(t, err, voting.ErrRumorNotLocked)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeRumor_EmptyChainStartsAtGenesis(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(headerRow(r, true, false))
	mock.ExpectQuery("FROM votes").WillReturnRows(sqlmock.NewRows(voteColumns()))
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM ledger_blocks").WillReturnRows(sqlmock.NewRows([]string{"height", "current_hash"}))
	mock.ExpectPrepare("UPDATE profiles p")
	mock.ExpectExec("WHERE id = \\$1").WithArgs("poster", -voting.DefaultPolicy().PosterLiePenalty, sqlmock.AnyArg(), testNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ledger_blocks").
		WithArgs(int64(1), "r1", r.Content, "LIE", sqlmock.AnyArg(), ledger.GenesisHash, sqlmock.AnyArg(), testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rumors").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM vote_settlements").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	got, applied, err := repo.FinalizeRumor(context.Background(), "r1", testNow, settleWith(voting.DefaultPolicy(), testNow))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, ledger.GenesisHash, got.PreviousHash)
	assert.Equal(t, models.VoteLie, *got.FinalDecision, "no votes is a tie")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeRumor_BlockInsertFailureRollsBack(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(headerRow(r, true, false))
	mock.ExpectQuery("FROM votes").WillReturnRows(sqlmock.NewRows(voteColumns()).AddRow("A", "r1", "FACT", 1.0, true, testNow))
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM ledger_blocks").WillReturnRows(sqlmock.NewRows([]string{"height", "current_hash"}))
	mock.ExpectPrepare("UPDATE profiles p").ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("WHERE id = \\$1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ledger_blocks").WillReturnError(pgError("23505"))
	mock.ExpectRollback()

	_, applied, err := repo.FinalizeRumor(context.Background(), "r1", testNow, settleWith(voting.DefaultPolicy(), testNow))
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeRumor_SettleErrorAborts(t *testing.T) {
	repo, mock := newTestRumorRepo(t)
	r := testRumor()
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(headerRow(r, true, false))
	mock.ExpectQuery("FROM votes").WillReturnRows(sqlmock.NewRows(voteColumns()))
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM ledger_blocks").WillReturnRows(sqlmock.NewRows([]string{"height", "current_hash"}))
	mock.ExpectRollback()

	_, _, err := repo.FinalizeRumor(context.Background(), "r1", testNow, func(models.Rumor, []models.Vote, models.LedgerHead) (models.Settlement, error) {
		return models.Settlement{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
