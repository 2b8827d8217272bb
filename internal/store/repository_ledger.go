// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/models"
)

type ledgerRepository struct {
	*DB
	logger *logger.Logger
}

func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	return &ledgerRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *ledgerRepository) Head(ctx context.Context) (models.LedgerHead, error) {
	head, err := readHead(ctx, l.DB)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ledgerRepository.Head").Msg("failed to read ledger head")
	}
	return head, err
}

// ListBlocks returns blocks from fromHeight upwards in height order. A zero
// limit returns the rest of the chain.
func (l *ledgerRepository) ListBlocks(ctx context.Context, fromHeight int64, limit uint64) ([]models.LedgerBlock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlocksQuery(ctx, fromHeight, limit)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListBlocks").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blocks := make([]models.LedgerBlock, 0, 64)
	for rows.Next() {
		b, scanErr := scanBlock(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*ledgerRepository.ListBlocks").Msg("failed to scan block row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		blocks = append(blocks, b)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListBlocks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blocks, nil
}

func (l *ledgerRepository) CountBlocks(ctx context.Context) (int64, error) {
	var n int64
	if err := l.DB.QueryRowContext(ctx, countLedgerBlocks).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ledgerRepository.CountBlocks").Msg("failed to count blocks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
