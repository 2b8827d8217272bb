// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/vera-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func buildChain(t *testing.T, n int) []models.LedgerBlock {
	t.Helper()

	blocks := make([]models.LedgerBlock, 0, n)
	head := Genesis()
	for i := range n {
		decision := models.VoteFact
		if i%2 == 1 {
			decision = models.VoteLie
		}
		rumor := models.Rumor{ID: fmt.Sprintf("rumor-%d", i), Content: fmt.Sprintf("claim %d", i)}
		snapshot := models.VotingSnapshot{
			AreaOfVote:   models.AreaSEECS,
			VotingEndsAt: now.Add(time.Duration(i) * time.Hour),
			Tally:        models.Tally{TotalVotes: int64(i + 1), FactWeight: float64(i)},
		}

		b, err := NewBlock(rumor, decision, snapshot, head, now)
		require.NoError(t, err)
		blocks = append(blocks, b)
		head = Head(blocks)
	}
	return blocks
}

func TestNewBlock_LinksToHead(t *testing.T) {
	blocks := buildChain(t, 3)

	assert.Equal(t, GenesisHash, blocks[0].PreviousHash)
	assert.Equal(t, int64(1), blocks[0].Height)
	assert.Equal(t, blocks[0].CurrentHash, blocks[1].PreviousHash)
	assert.Equal(t, blocks[1].CurrentHash, blocks[2].PreviousHash)
	assert.Len(t, GenesisHash, 64)
}

func TestComputeHash_PlainConcatenation(t *testing.T) {
	b := models.LedgerBlock{RumorID: "a", Content: "b", Decision: "c", VotingData: "", PreviousHash: ""}
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ComputeHash(b))
}

func TestVerifyChain_Untampered(t *testing.T) {
	for _, n := range []int{0, 1, 2, 25} {
		assert.NoError(t, VerifyChain(buildChain(t, n)), "chain of %d", n)
		assert.True(t, Verify(buildChain(t, n)))
	}
}

func TestVerifyChain_SingleFieldTamper(t *testing.T) {
	tamperers := map[string]func(b *models.LedgerBlock){
		"content":       func(b *models.LedgerBlock) { b.Content += "!" },
		"decision":      func(b *models.LedgerBlock) { b.Decision = flip(b.Decision) },
		"voting data":   func(b *models.LedgerBlock) { b.VotingData = `{"tally":{}}` },
		"rumor id":      func(b *models.LedgerBlock) { b.RumorID = "other" },
		"current hash":  func(b *models.LedgerBlock) { b.CurrentHash = GenesisHash },
		"previous hash": func(b *models.LedgerBlock) { b.PreviousHash = GenesisHash[1:] + "1" },
	}

	const n = 6
	for name, tamper := range tamperers {
		for i := range n {
			t.Run(fmt.Sprintf("%s/block-%d", name, i), func(t *testing.T) {
				blocks := buildChain(t, n)
				tamper(&blocks[i])

				err := VerifyChain(blocks)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrChainTampered))
				assert.False(t, Verify(blocks))

				var integrityErr *IntegrityError
				require.ErrorAs(t, err, &integrityErr)
				assert.LessOrEqual(t, integrityErr.Height, int64(i+2))
			})
		}
	}
}

func TestVerifyChain_GapInHeights(t *testing.T) {
	blocks := buildChain(t, 4)
	blocks = append(blocks[:1], blocks[2:]...)

	var integrityErr *IntegrityError
	require.ErrorAs(t, VerifyChain(blocks), &integrityErr)
	assert.Equal(t, int64(3), integrityErr.Height)
}

func TestVerifyFrom_Segment(t *testing.T) {
	blocks := buildChain(t, 5)
	assert.NoError(t, VerifyFrom(Head(blocks[:2]), blocks[2:]))
	assert.Error(t, VerifyFrom(Genesis(), blocks[2:]))
}

func TestSerializeSnapshot_ZoneIndependent(t *testing.T) {
	loc := time.FixedZone("PKT", 5*3600)
	a, err := SerializeSnapshot(models.VotingSnapshot{VotingEndsAt: now})
	require.NoError(t, err)
	b, err := SerializeSnapshot(models.VotingSnapshot{VotingEndsAt: now.In(loc)})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func flip(d models.VoteType) models.VoteType {
	if d == models.VoteFact {
		return models.VoteLie
	}
	return models.VoteFact
}

func TestReport(t *testing.T) {
	blocks := buildChain(t, 3)
	valid := Report(Head(blocks), nil)
	assert.True(t, valid.Valid)
	assert.Equal(t, int64(3), valid.Blocks)
	assert.Nil(t, valid.FailingHeight)

	blocks[1].Content = "edited"
	broken := Report(Head(blocks[:1]), VerifyChain(blocks))
	assert.False(t, broken.Valid)
	require.NotNil(t, broken.FailingHeight)
	assert.Equal(t, int64(2), *broken.FailingHeight)
	assert.NotEmpty(t, broken.Reason)
}

func TestAudit(t *testing.T) {
	blocks := buildChain(t, 5)
	assert.True(t, Audit(blocks).Valid)
	assert.True(t, Audit(nil).Valid)

	blocks[3].Decision = flip(blocks[3].Decision)
	report := Audit(blocks)
	assert.False(t, report.Valid)
	assert.Equal(t, int64(3), report.Blocks)
	assert.Equal(t, blocks[2].CurrentHash, report.HeadHash)
	require.NotNil(t, report.FailingHeight)
	assert.Equal(t, int64(4), *report.FailingHeight)
}

func TestVerifyChain_AnyContentEditIsCaught(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		blocks := buildChain(t, n)

		i := rapid.IntRange(0, n-1).Draw(rt, "block")
		blocks[i].Content += rapid.StringN(1, 32, -1).Draw(rt, "suffix")

		report := Audit(blocks)
		if report.Valid {
			rt.Fatalf("edit of block %d not detected", i+1)
		}
		if *report.FailingHeight != int64(i+1) {
			rt.Fatalf("failure reported at %d, edited %d", *report.FailingHeight, i+1)
		}
	})
}
