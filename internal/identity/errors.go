// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import "errors"

var (
	// ErrMalformedSecretKey is returned for any key that is not exactly 64
	// hex characters.
	ErrMalformedSecretKey = errors.New("secret key must be 64 hexadecimal characters")

	// ErrKeyGeneration is returned when the system random source fails.
	ErrKeyGeneration = errors.New("failed to generate secret key")
)
