// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisterRequest opens a new profile in the given area.
type RegisterRequest struct {
	Area Area `json:"area"`
}

// LoginRequest authenticates with a secret key.
type LoginRequest struct {
	SecretKey string `json:"secretKey"`
}

// RecoverRequest re-keys a profile. The area must match the one given at
// registration.
type RecoverRequest struct {
	SecretKey string `json:"secretKey"`
	Area      Area   `json:"area"`
}

// AuthResponse is returned by register, login and recover. SecretKey is
// present only when a new key was issued.
type AuthResponse struct {
	SecretKey string  `json:"secretKey,omitempty"`
	Token     string  `json:"token"`
	Profile   Profile `json:"profile"`
}

// CreateRumorRequest posts a new rumor.
type CreateRumorRequest struct {
	PosterID     string    `json:"-"`
	Content      string    `json:"content"`
	AreaOfVote   Area      `json:"areaOfVote"`
	VotingEndsAt time.Time `json:"votingEndsAt"`
}

// CreateRumorResponse carries the stored rumor and the validator verdict.
type CreateRumorResponse struct {
	Rumor      Rumor        `json:"rumor"`
	Validation AIValidation `json:"validation"`
}

// ValidateContentRequest asks only for the AI verdict.
type ValidateContentRequest struct {
	Content string `json:"content"`
}

// CastVoteRequest is a vote on a rumor. SecretKey travels in a header and is
// filled in by the transport layer.
type CastVoteRequest struct {
	ProfileID string   `json:"-"`
	SecretKey string   `json:"-"`
	RumorID   string   `json:"-"`
	VoteType  VoteType `json:"voteType"`
}

// VoteStatusRequest asks whether the presented key already voted.
type VoteStatusRequest struct {
	ProfileID string
	SecretKey string
	RumorID   string
}

// AdminLoginRequest authenticates an administrator.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UnblockRequest identifies the profile to unblock by key or by id.
type UnblockRequest struct {
	SecretKey string `json:"secretKey,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
