// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"errors"
	"fmt"
)

// ErrChainTampered marks any hash chain verification failure.
var ErrChainTampered = errors.New("ledger hash chain is broken")

// IntegrityError pinpoints the first block that failed verification.
type IntegrityError struct {
	Height int64
	Reason string
}

func newIntegrityError(height int64, reason string) *IntegrityError {
	return &IntegrityError{Height: height, Reason: reason}
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s at height %d: %s", ErrChainTampered, e.Height, e.Reason)
}

func (e *IntegrityError) Unwrap() error {
	return ErrChainTampered
}
