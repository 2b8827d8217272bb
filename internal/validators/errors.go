// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidArea      = errors.New("unknown area")
	ErrEmptyContent     = errors.New("content is required")
	ErrContentTooLong   = errors.New("content is too long")
	ErrMissingDeadline  = errors.New("votingEndsAt is required")
	ErrInvalidVoteType  = errors.New("voteType must be FACT or LIE")
	ErrEmptyRumorID     = errors.New("rumor id is required")
	ErrEmptyProfileID   = errors.New("profile id is required")
	ErrInvalidState     = errors.New("unknown rumor status")
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrAmbiguousUnblock = errors.New("exactly one of secretKey and profileId is required")
)
