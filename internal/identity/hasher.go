// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import "github.com/MKhiriev/vera-node/internal/utils"

// KeyHasher turns a secret key into the credential stored on a profile.
// It is an HMAC-SHA256 keyed by a server-side pepper, so a leaked table of
// hashes cannot be brute-forced without the pepper.
type KeyHasher struct {
	pepper string
}

// NewKeyHasher returns a hasher bound to pepper.
func NewKeyHasher(pepper string) *KeyHasher {
	return &KeyHasher{pepper: pepper}
}

// Hash returns the hex-encoded keyed hash of secretKey.
func (h *KeyHasher) Hash(secretKey string) string {
	return utils.HashString(secretKey, h.pepper)
}

// Matches reports whether secretKey hashes to storedHash, in constant time.
func (h *KeyHasher) Matches(secretKey, storedHash string) bool {
	return utils.EqualHashes(h.Hash(secretKey), storedHash)
}
