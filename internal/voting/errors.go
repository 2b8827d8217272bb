// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package voting

import "errors"

var (
	ErrVotingClosed        = errors.New("voting on this rumor is closed")
	ErrRumorFinal          = errors.New("rumor is already final")
	ErrRumorNotLocked      = errors.New("rumor is still open for voting")
	ErrInvalidTransition   = errors.New("invalid rumor state transition")
	ErrInvalidVotingWindow = errors.New("voting deadline is out of the allowed range")
)
