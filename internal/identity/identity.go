// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity issues secret keys and derives the per-rumor nullifiers
// that make votes anonymous yet unique.
//
// A secret key is 32 random bytes rendered as 64 lowercase hex characters.
// The server stores only a keyed hash of it (see [KeyHasher]); the raw key is
// handed to the user exactly once, at registration or recovery.
//
// A nullifier is SHA-256(secretKey ∥ rumorID). It is deterministic per
// (key, rumor) pair, so the same key cannot vote twice on the same rumor,
// while nullifiers of different rumors are unlinkable.
package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	// keyBytes is the entropy of a secret key.
	keyBytes = 32

	// KeyLength is the length of a rendered secret key.
	KeyLength = keyBytes * 2
)

var keyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// randReader is swapped in tests.
var randReader io.Reader = rand.Reader

// IssueSecretKey generates a fresh 256-bit secret key.
func IssueSecretKey() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}
	return hex.EncodeToString(buf), nil
}

// NormalizeSecretKey trims and lowercases key and checks it is 64 hex
// characters. It must be called before any lookup by key.
func NormalizeSecretKey(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !keyPattern.MatchString(key) {
		return "", ErrMalformedSecretKey
	}
	return key, nil
}

// DeriveNullifier returns hex(SHA-256(secretKey ∥ rumorID)).
func DeriveNullifier(secretKey, rumorID string) string {
	sum := sha256.Sum256([]byte(secretKey + rumorID))
	return hex.EncodeToString(sum[:])
}
