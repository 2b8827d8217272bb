// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrKeyExpired          = errors.New("secret key is expired, recover your account")
	ErrUserBlocked         = errors.New("profile is blocked")
	ErrAdminLoginDisabled  = errors.New("admin login is disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrRumorRejected        = errors.New("rumor rejected")
	ErrValidatorUnavailable = errors.New("content validation is unavailable")

	ErrLedgerIntegrity = errors.New("ledger integrity violation")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// RejectionError carries the validator's reason for refusing a rumor.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	if e.Reason == "" {
		return ErrRumorRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRumorRejected, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return ErrRumorRejected
}
