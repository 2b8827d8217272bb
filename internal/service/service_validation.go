// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vera-node/internal/validators"
	"github.com/MKhiriev/vera-node/models"
)

// The validation wrappers reject malformed requests before the wrapped
// service performs any lookup.

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("invalid register request: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("invalid login request: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Recover(ctx context.Context, req models.RecoverRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("invalid recover request: %w", err)
	}
	return v.inner.Recover(ctx, req)
}

func (v *AuthValidationService) Profile(ctx context.Context, profileID string) (models.Profile, error) {
	return v.inner.Profile(ctx, profileID)
}

func (v *AuthValidationService) AdminLogin(ctx context.Context, req models.AdminLoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("invalid admin login request: %w", err)
	}
	return v.inner.AdminLogin(ctx, req)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

type RumorValidationService struct {
	inner     RumorService
	validator validators.Validator
}

func NewRumorValidationService() RumorServiceWrapper {
	return &RumorValidationService{validator: validators.NewRequestValidator()}
}

func (v *RumorValidationService) Wrap(inner RumorService) RumorService {
	v.inner = inner
	return v
}

func (v *RumorValidationService) CreateRumor(ctx context.Context, req models.CreateRumorRequest) (models.CreateRumorResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CreateRumorResponse{}, fmt.Errorf("invalid rumor: %w", err)
	}
	return v.inner.CreateRumor(ctx, req)
}

func (v *RumorValidationService) ValidateContent(ctx context.Context, req models.ValidateContentRequest) (models.AIValidation, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AIValidation{}, fmt.Errorf("invalid content: %w", err)
	}
	return v.inner.ValidateContent(ctx, req)
}

func (v *RumorValidationService) GetRumor(ctx context.Context, id string) (models.Rumor, error) {
	return v.inner.GetRumor(ctx, id)
}

func (v *RumorValidationService) GetStats(ctx context.Context, id string) (models.StatsView, error) {
	return v.inner.GetStats(ctx, id)
}

func (v *RumorValidationService) ListRumors(ctx context.Context, filter models.RumorFilter) ([]models.Rumor, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return v.inner.ListRumors(ctx, filter)
}

type VoteValidationService struct {
	inner     VoteService
	validator validators.Validator
}

func NewVoteValidationService() VoteServiceWrapper {
	return &VoteValidationService{validator: validators.NewRequestValidator()}
}

func (v *VoteValidationService) Wrap(inner VoteService) VoteService {
	v.inner = inner
	return v
}

func (v *VoteValidationService) CastVote(ctx context.Context, req models.CastVoteRequest) (models.Vote, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Vote{}, fmt.Errorf("invalid vote: %w", err)
	}
	return v.inner.CastVote(ctx, req)
}

func (v *VoteValidationService) VoteStatus(ctx context.Context, req models.VoteStatusRequest) (models.VoteStatus, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.VoteStatus{}, fmt.Errorf("invalid vote status request: %w", err)
	}
	return v.inner.VoteStatus(ctx, req)
}

// AdminValidationService checks that an unblock names exactly one profile,
// either by id or by its current secret key.
type AdminValidationService struct {
	inner     AdminService
	validator validators.Validator
}

func NewAdminValidationService() AdminServiceWrapper {
	return &AdminValidationService{validator: validators.NewRequestValidator()}
}

func (v *AdminValidationService) Wrap(inner AdminService) AdminService {
	v.inner = inner
	return v
}

func (v *AdminValidationService) Stats(ctx context.Context) (models.AdminStats, error) {
	return v.inner.Stats(ctx)
}

func (v *AdminValidationService) BlockedProfiles(ctx context.Context) ([]models.BlockedProfile, error) {
	return v.inner.BlockedProfiles(ctx)
}

func (v *AdminValidationService) Unblock(ctx context.Context, req models.UnblockRequest) (models.Profile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, fmt.Errorf("invalid unblock request: %w", err)
	}
	return v.inner.Unblock(ctx, req)
}
