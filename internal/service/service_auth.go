// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
	"golang.org/x/crypto/bcrypt"
)

type idGenerator interface {
	Generate() string
}

// authService issues secret keys and session tokens.
//
// Only the keyed hash of a secret key is ever handed to the repository; the
// raw key leaves this service exactly once, in the response that issued it.
type authService struct {
	profiles store.ProfileRepository
	hasher   *identity.KeyHasher
	ids      idGenerator

	// keyTTL is how long a freshly issued key stays usable for login.
	keyTTL time.Duration

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	adminUsername     string
	adminPasswordHash string

	now    Clock
	logger *logger.Logger
}

// NewAuthService constructs an AuthService over profiles with the security
// parameters from cfg.
func NewAuthService(profiles store.ProfileRepository, cfg config.App, now Clock, logger *logger.Logger) AuthService {
	return &authService{
		profiles:          profiles,
		hasher:            identity.NewKeyHasher(cfg.KeyPepper),
		ids:               newIDGenerator(),
		keyTTL:            cfg.KeyTTL,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		adminUsername:     cfg.AdminUsername,
		adminPasswordHash: cfg.AdminPasswordHash,
		now:               now,
		logger:            logger,
	}
}

// Register opens a profile in req.Area and returns its freshly issued key.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if !req.Area.Valid() {
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	secretKey, err := identity.IssueSecretKey()
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("secret key generation failed")
		return models.AuthResponse{}, err
	}

	now := a.now()
	profile, err := a.profiles.CreateProfile(ctx, models.Profile{
		ID:            a.ids.Generate(),
		SecretKeyHash: a.hasher.Hash(secretKey),
		Area:          req.Area,
		KeyExpiresAt:  now.Add(a.keyTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("profile creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	token, err := a.createToken(profile.ID, models.RoleUser)
	if err != nil {
		return models.AuthResponse{}, err
	}

	log.Info().Str("profile_id", profile.ID).Str("area", profile.Area.String()).Msg("profile registered")
	return models.AuthResponse{SecretKey: secretKey, Token: token.String(), Profile: profile}, nil
}

// Login authenticates with the current key of a profile. Blocked profiles
// may log in; they are refused on mutations instead.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	profile, err := a.profileByKey(ctx, req.SecretKey)
	if err != nil {
		log.Debug().Err(err).Msg("login refused")
		return models.AuthResponse{}, err
	}

	if profile.IsKeyExpired(a.now()) {
		log.Info().Str("profile_id", profile.ID).Msg("login with expired key")
		return models.AuthResponse{}, ErrKeyExpired
	}

	token, err := a.createToken(profile.ID, models.RoleUser)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token.String(), Profile: profile}, nil
}

// Recover replaces the key of the profile owning req.SecretKey. The area
// must match the registered one. Points, counters and the blocked flag stay
// with the profile.
func (a *authService) Recover(ctx context.Context, req models.RecoverRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	profile, err := a.profileByKey(ctx, req.SecretKey)
	if err != nil {
		log.Debug().Err(err).Msg("recovery refused")
		return models.AuthResponse{}, err
	}
	if profile.Area != req.Area {
		log.Info().Str("profile_id", profile.ID).Msg("recovery with wrong area")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	newKey, err := identity.IssueSecretKey()
	if err != nil {
		log.Err(err).Str("func", "*authService.Recover").Msg("secret key generation failed")
		return models.AuthResponse{}, err
	}

	now := a.now()
	rekeyed, err := a.profiles.Rekey(ctx, store.Rekey{
		ProfileID:    profile.ID,
		OldKeyHash:   profile.SecretKeyHash,
		NewKeyHash:   a.hasher.Hash(newKey),
		KeyExpiresAt: now.Add(a.keyTTL),
		Now:          now,
		AliasFor: func(rumorID string) string {
			return identity.DeriveNullifier(newKey, rumorID)
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Recover").Str("profile_id", profile.ID).Msg("re-key failed")
		return models.AuthResponse{}, fmt.Errorf("re-key failed: %w", err)
	}

	token, err := a.createToken(rekeyed.ID, models.RoleUser)
	if err != nil {
		return models.AuthResponse{}, err
	}

	log.Info().Str("profile_id", rekeyed.ID).Msg("profile re-keyed")
	return models.AuthResponse{SecretKey: newKey, Token: token.String(), Profile: rekeyed}, nil
}

func (a *authService) Profile(ctx context.Context, profileID string) (models.Profile, error) {
	profile, err := a.profiles.FindProfileByID(ctx, profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return profile, nil
}

// AdminLogin checks the configured admin credentials and issues an admin
// token.
func (a *authService) AdminLogin(ctx context.Context, req models.AdminLoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.adminUsername == "" || a.adminPasswordHash == "" {
		return models.Token{}, ErrAdminLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.adminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		log.Warn().Str("username", req.Username).Msg("admin login refused")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(a.adminUsername, models.RoleAdmin)
}

// ParseToken validates a raw JWT. Any failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// profileByKey validates the key format before any lookup. Unknown and
// retired keys are indistinguishable to the caller.
func (a *authService) profileByKey(ctx context.Context, secretKey string) (models.Profile, error) {
	key, err := identity.NormalizeSecretKey(secretKey)
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := a.profiles.FindProfileByKeyHash(ctx, a.hasher.Hash(key))
	switch {
	case errors.Is(err, store.ErrProfileNotFound), errors.Is(err, store.ErrKeyRetired):
		return models.Profile{}, ErrInvalidCredentials
	case err != nil:
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return profile, nil
}

func (a *authService) createToken(subject string, role models.Role) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
