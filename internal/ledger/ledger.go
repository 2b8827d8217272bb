// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger builds and verifies the hash chain of final decisions.
//
// Every finalized rumor produces one block. A block's hash is
//
//	hex(SHA-256(rumorID ∥ content ∥ decision ∥ votingData ∥ previousHash))
//
// and its previousHash is the hash of the block before it, or [GenesisHash]
// for the first block. The chain is global across all rumors.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vera-node/models"
)

// GenesisHash is the previous hash of the first block.
var GenesisHash = strings.Repeat("0", sha256.Size*2)

// Genesis is the head of an empty chain.
func Genesis() models.LedgerHead {
	return models.LedgerHead{Height: 0, Hash: GenesisHash}
}

// ComputeHash recomputes the hash of b from its stored fields.
func ComputeHash(b models.LedgerBlock) string {
	h := sha256.New()
	h.Write([]byte(b.RumorID))
	h.Write([]byte(b.Content))
	h.Write([]byte(b.Decision))
	h.Write([]byte(b.VotingData))
	h.Write([]byte(b.PreviousHash))
	return hex.EncodeToString(h.Sum(nil))
}

// SerializeSnapshot renders the voting data that is sealed into a block.
// Times are normalized to UTC so the encoding does not depend on the
// server's zone.
func SerializeSnapshot(s models.VotingSnapshot) (string, error) {
	s.VotingEndsAt = s.VotingEndsAt.UTC()
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("error serializing voting snapshot: %w", err)
	}
	return string(b), nil
}

// NewBlock builds the block that seals rumor's decision on top of head.
func NewBlock(rumor models.Rumor, decision models.VoteType, snapshot models.VotingSnapshot, head models.LedgerHead, now time.Time) (models.LedgerBlock, error) {
	votingData, err := SerializeSnapshot(snapshot)
	if err != nil {
		return models.LedgerBlock{}, err
	}

	block := models.LedgerBlock{
		Height:       head.Height + 1,
		RumorID:      rumor.ID,
		Content:      rumor.Content,
		Decision:     decision,
		VotingData:   votingData,
		PreviousHash: head.Hash,
		CreatedAt:    now.UTC(),
	}
	block.CurrentHash = ComputeHash(block)

	return block, nil
}

// VerifyChain checks a full chain starting from genesis. It returns nil for
// an intact chain and an *IntegrityError for the first broken block.
func VerifyChain(blocks []models.LedgerBlock) error {
	return VerifyFrom(Genesis(), blocks)
}

// VerifyFrom checks that blocks extend prev: heights are consecutive, each
// block links to its predecessor and each stored hash matches its fields.
func VerifyFrom(prev models.LedgerHead, blocks []models.LedgerBlock) error {
	for _, b := range blocks {
		if b.Height != prev.Height+1 {
			return newIntegrityError(b.Height, fmt.Sprintf("expected height %d", prev.Height+1))
		}
		if b.PreviousHash != prev.Hash {
			return newIntegrityError(b.Height, "previous hash does not link to the preceding block")
		}
		if ComputeHash(b) != b.CurrentHash {
			return newIntegrityError(b.Height, "stored hash does not match block contents")
		}
		prev = models.LedgerHead{Height: b.Height, Hash: b.CurrentHash}
	}
	return nil
}

// Verify is the boolean form of VerifyChain.
func Verify(blocks []models.LedgerBlock) bool {
	return VerifyChain(blocks) == nil
}

// Head returns the tip of blocks, or genesis for an empty slice.
func Head(blocks []models.LedgerBlock) models.LedgerHead {
	if len(blocks) == 0 {
		return Genesis()
	}
	last := blocks[len(blocks)-1]
	return models.LedgerHead{Height: last.Height, Hash: last.CurrentHash}
}

// Report describes a verification outcome. head is the last block known to
// be good; err is the verification error, nil for a valid chain.
func Report(head models.LedgerHead, err error) models.LedgerReport {
	report := models.LedgerReport{Valid: err == nil, Blocks: head.Height, HeadHash: head.Hash}
	if err == nil {
		return report
	}

	report.Reason = err.Error()
	var integrityErr *IntegrityError
	if errors.As(err, &integrityErr) {
		report.FailingHeight = &integrityErr.Height
	}
	return report
}

// Audit verifies a full chain from genesis and reports how far it holds.
func Audit(blocks []models.LedgerBlock) models.LedgerReport {
	head := Genesis()
	for i := range blocks {
		if err := VerifyFrom(head, blocks[i:i+1]); err != nil {
			return Report(head, err)
		}
		head = Head(blocks[i : i+1])
	}
	return Report(head, nil)
}
