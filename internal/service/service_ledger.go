// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/ledger"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/models"
)

const (
	defaultBlocksLimit uint64 = 100
	maxBlocksLimit     uint64 = 1000

	// verifyPageSize is how many blocks Verify and Export read at a time.
	verifyPageSize uint64 = 500
)

type ledgerService struct {
	blocks  store.LedgerRepository
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewLedgerService(blocks store.LedgerRepository, m *metrics.Metrics, logger *logger.Logger) LedgerService {
	return &ledgerService{blocks: blocks, metrics: m, logger: logger}
}

func (s *ledgerService) ListBlocks(ctx context.Context, fromHeight int64, limit uint64) ([]models.LedgerBlock, error) {
	fromHeight = max(fromHeight, 1)
	switch {
	case limit == 0:
		limit = defaultBlocksLimit
	case limit > maxBlocksLimit:
		limit = maxBlocksLimit
	}

	blocks, err := s.blocks.ListBlocks(ctx, fromHeight, limit)
	if err != nil {
		return nil, fmt.Errorf("listing blocks failed: %w", err)
	}
	return blocks, nil
}

// Verify walks the chain page by page from genesis, checking each page
// against the head of the previous one.
func (s *ledgerService) Verify(ctx context.Context) (models.LedgerReport, error) {
	log := logger.FromContext(ctx)

	head := ledger.Genesis()
	for {
		page, err := s.blocks.ListBlocks(ctx, head.Height+1, verifyPageSize)
		if err != nil {
			return models.LedgerReport{}, fmt.Errorf("reading blocks failed: %w", err)
		}
		if len(page) == 0 {
			break
		}

		if err = ledger.VerifyFrom(head, page); err != nil {
			report := ledger.Report(head, err)
			s.metrics.IntegrityFailure()
			log.Error().Err(err).Str("func", "*ledgerService.Verify").Msg("ledger hash chain is broken")
			return report, fmt.Errorf("%w: %w", ErrLedgerIntegrity, err)
		}

		head = ledger.Head(page)
		if uint64(len(page)) < verifyPageSize {
			break
		}
	}

	s.metrics.SetLedgerHeight(head.Height)
	return ledger.Report(head, nil), nil
}

// Export resumes from the sink's head. The sink verifies each page before
// storing it, so a diverged copy fails instead of growing.
func (s *ledgerService) Export(ctx context.Context, sink BlockSink) (int64, error) {
	head, err := sink.Head(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading sink head failed: %w", err)
	}

	var copied int64
	for {
		page, err := s.blocks.ListBlocks(ctx, head.Height+1, verifyPageSize)
		if err != nil {
			return copied, fmt.Errorf("reading blocks failed: %w", err)
		}
		if len(page) == 0 {
			return copied, nil
		}

		if err = sink.Append(ctx, page); err != nil {
			return copied, fmt.Errorf("appending to sink failed: %w", err)
		}
		copied += int64(len(page))
		head = ledger.Head(page)
	}
}
