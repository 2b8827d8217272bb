// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/vera-node/internal/ledger"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/models"
)

const (
	createArchiveTable = `CREATE TABLE IF NOT EXISTS ledger_blocks (
		height        INTEGER PRIMARY KEY,
		rumor_id      TEXT NOT NULL UNIQUE,
		content       TEXT NOT NULL,
		decision      TEXT NOT NULL,
		voting_data   TEXT NOT NULL,
		previous_hash TEXT NOT NULL,
		current_hash  TEXT NOT NULL UNIQUE,
		created_at    TIMESTAMP NOT NULL
	);`

	insertArchiveBlock = `INSERT INTO ledger_blocks (height, rumor_id, content, decision, voting_data, previous_hash, current_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	selectArchiveBlocks = `SELECT height, rumor_id, content, decision, voting_data, previous_hash, current_hash, created_at
		FROM ledger_blocks
		ORDER BY height;`
)

func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer at a time for a file database
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// LedgerArchive is an offline copy of the ledger in a SQLite file. Auditors
// keep it next to the node and extend it from the live chain; blocks already
// archived are never rewritten.
type LedgerArchive struct {
	db *DB
}

func OpenLedgerArchive(ctx context.Context, path string, log *logger.Logger) (*LedgerArchive, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, err
	}

	if _, err = db.ExecContext(ctx, createArchiveTable); err != nil {
		log.Err(err).Str("func", "OpenLedgerArchive").Msg("error creating archive table")
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &LedgerArchive{db: db}, nil
}

// Head returns the last archived block, or genesis for an empty archive.
func (a *LedgerArchive) Head(ctx context.Context) (models.LedgerHead, error) {
	return readHead(ctx, a.db)
}

// Append stores blocks after checking that they extend the archive's head.
func (a *LedgerArchive) Append(ctx context.Context, blocks []models.LedgerBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	head, err := readHead(ctx, tx)
	if err != nil {
		return err
	}
	if err = ledger.VerifyFrom(head, blocks); err != nil {
		log.Err(err).Str("func", "*LedgerArchive.Append").Msg("blocks do not extend the archive")
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertArchiveBlock)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, b := range blocks {
		if _, err = stmt.ExecContext(ctx, b.Height, b.RumorID, b.Content, string(b.Decision), b.VotingData, b.PreviousHash, b.CurrentHash, b.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Blocks returns the whole archived chain in height order.
func (a *LedgerArchive) Blocks(ctx context.Context) ([]models.LedgerBlock, error) {
	rows, err := a.db.QueryContext(ctx, selectArchiveBlocks)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var blocks []models.LedgerBlock
	for rows.Next() {
		b, scanErr := scanBlock(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		blocks = append(blocks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return blocks, nil
}

func (a *LedgerArchive) Close() error {
	return a.db.Close()
}
