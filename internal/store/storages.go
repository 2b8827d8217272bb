// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/logger"
)

// Storages aggregates the PostgreSQL repositories of the node.
type Storages struct {
	ProfileRepository ProfileRepository
	RumorRepository   RumorRepository
	VoteRepository    VoteRepository
	LedgerRepository  LedgerRepository
	StatsRepository   StatsRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires every
// repository to the same connection pool.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ProfileRepository: NewProfileRepository(db, log),
		RumorRepository:   NewRumorRepository(db, log),
		VoteRepository:    NewVoteRepository(db, log),
		LedgerRepository:  NewLedgerRepository(db, log),
		StatsRepository:   NewStatsRepository(db, log),
		db:                db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// IsRetryable reports whether err is a transient storage failure.
func (s *Storages) IsRetryable(err error) bool {
	return s.db.IsRetryable(err)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
