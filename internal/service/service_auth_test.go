// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/vera-node/internal/config"
	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/mock"
	"github.com/MKhiriev/vera-node/internal/store"
	"github.com/MKhiriev/vera-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const keyTTL = 90 * 24 * time.Hour

func authConfig(t *testing.T) config.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return config.App{
		KeyPepper:         testPepper,
		TokenSignKey:      "sign-key",
		TokenIssuer:       "vera-node",
		TokenDuration:     time.Hour,
		KeyTTL:            keyTTL,
		AdminUsername:     "root",
		AdminPasswordHash: string(hash),
	}
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockProfileRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileRepository(ctrl)
	svc := NewAuthService(profiles, authConfig(t), fixedClock(), logger.Nop()).(*authService)
	svc.ids = staticID("profile-1")
	return svc, profiles
}

func storedProfile(key string) models.Profile {
	return models.Profile{
		ID:            "profile-1",
		SecretKeyHash: testHasher().Hash(key),
		Area:          models.AreaSEECS,
		Points:        4,
		KeyExpiresAt:  testNow.Add(24 * time.Hour),
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register(t *testing.T) {
	svc, profiles := newTestAuthService(t)

	var stored models.Profile
	profiles.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) {
			stored = p
			return p, nil
		})

	resp, err := svc.Register(context.Background(), models.RegisterRequest{Area: models.AreaSEECS})
	require.NoError(t, err)

	_, err = identity.NormalizeSecretKey(resp.SecretKey)
	require.NoError(t, err)
	assert.NotEqual(t, resp.SecretKey, stored.SecretKeyHash, "raw key must never reach storage")
	assert.True(t, testHasher().Matches(resp.SecretKey, stored.SecretKeyHash))
	assert.Equal(t, "profile-1", stored.ID)
	assert.Equal(t, testNow.Add(keyTTL), stored.KeyExpiresAt)
	assert.NotEmpty(t, resp.Token)

	token, err := svc.ParseToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", token.Subject)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestAuthService_Register_InvalidArea(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Area: "Moon"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_StorageError(t *testing.T) {
	svc, profiles := newTestAuthService(t)
	profiles.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(models.Profile{}, store.ErrProfileAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Area: models.AreaNBS})
	assert.ErrorIs(t, err, store.ErrProfileAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	expired := storedProfile(keyA)
	expired.KeyExpiresAt = testNow

	blocked := storedProfile(keyA)
	blocked.IsBlocked = true

	tests := []struct {
		name    string
		key     string
		found   models.Profile
		findErr error
		noFind  bool
		wantErr error
	}{
		{name: "success", key: keyA, found: storedProfile(keyA)},
		{name: "uppercase key", key: "A3F1C2D4E5B60718293A4B5C6D7E8F90A1B2C3D4E5F60718293A4B5C6D7E8F90", found: storedProfile(keyA)},
		{name: "blocked may log in", key: keyA, found: blocked},
		{name: "malformed key", key: "zz", noFind: true, wantErr: identity.ErrMalformedSecretKey},
		{name: "unknown key", key: keyA, findErr: store.ErrProfileNotFound, wantErr: ErrInvalidCredentials},
		{name: "retired key", key: keyA, findErr: store.ErrKeyRetired, wantErr: ErrInvalidCredentials},
		{name: "expired key", key: keyA, found: expired, wantErr: ErrKeyExpired},
		{name: "db failure", key: keyA, findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, profiles := newTestAuthService(t)
			if !tt.noFind {
				profiles.EXPECT().FindProfileByKeyHash(gomock.Any(), testHasher().Hash(keyA)).Return(tt.found, tt.findErr)
			}

			resp, err := svc.Login(context.Background(), models.LoginRequest{SecretKey: tt.key})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, resp.SecretKey)
			assert.Equal(t, tt.found.ID, resp.Profile.ID)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

// ─────────────────────────────────────────────
// Recover
// ─────────────────────────────────────────────

func TestAuthService_Recover(t *testing.T) {
	svc, profiles := newTestAuthService(t)

	old := storedProfile(keyA)
	old.KeyExpiresAt = testNow.Add(-time.Hour)

	profiles.EXPECT().FindProfileByKeyHash(gomock.Any(), old.SecretKeyHash).Return(old, nil)

	var got store.Rekey
	profiles.EXPECT().Rekey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r store.Rekey) (models.Profile, error) {
			got = r
			p := old
			p.SecretKeyHash = r.NewKeyHash
			p.KeyExpiresAt = r.KeyExpiresAt
			return p, nil
		})

	resp, err := svc.Recover(context.Background(), models.RecoverRequest{SecretKey: keyA, Area: models.AreaSEECS})
	require.NoError(t, err)

	assert.NotEqual(t, keyA, resp.SecretKey)
	assert.Equal(t, old.SecretKeyHash, got.OldKeyHash)
	assert.True(t, testHasher().Matches(resp.SecretKey, got.NewKeyHash))
	assert.Equal(t, testNow.Add(keyTTL), got.KeyExpiresAt)
	assert.Equal(t, identity.DeriveNullifier(resp.SecretKey, "rumor-9"), got.AliasFor("rumor-9"))
	assert.Equal(t, old.Points, resp.Profile.Points)
}

func TestAuthService_Recover_WrongArea(t *testing.T) {
	svc, profiles := newTestAuthService(t)
	profiles.EXPECT().FindProfileByKeyHash(gomock.Any(), gomock.Any()).Return(storedProfile(keyA), nil)

	_, err := svc.Recover(context.Background(), models.RecoverRequest{SecretKey: keyA, Area: models.AreaNBS})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Recover_RekeyFails(t *testing.T) {
	svc, profiles := newTestAuthService(t)
	profiles.EXPECT().FindProfileByKeyHash(gomock.Any(), gomock.Any()).Return(storedProfile(keyA), nil)
	profiles.EXPECT().Rekey(gomock.Any(), gomock.Any()).Return(models.Profile{}, store.ErrKeyRetired)

	_, err := svc.Recover(context.Background(), models.RecoverRequest{SecretKey: keyA, Area: models.AreaSEECS})
	assert.ErrorIs(t, err, store.ErrKeyRetired)
}

// ─────────────────────────────────────────────
// AdminLogin / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_AdminLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.AdminLogin(context.Background(), models.AdminLoginRequest{Username: "root", Password: "s3cret"})
	require.NoError(t, err)
	assert.True(t, token.IsAdmin())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, "root", parsed.Subject)
	assert.Equal(t, models.RoleAdmin, parsed.Role)

	_, err = svc.AdminLogin(context.Background(), models.AdminLoginRequest{Username: "root", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AdminLogin(context.Background(), models.AdminLoginRequest{Username: "admin", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AdminLogin_Disabled(t *testing.T) {
	svc, _ := newTestAuthService(t)
	svc.adminUsername = ""

	_, err := svc.AdminLogin(context.Background(), models.AdminLoginRequest{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrAdminLoginDisabled)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := NewAuthService(nil, config.App{TokenSignKey: "other", TokenIssuer: "vera-node", TokenDuration: time.Hour}, fixedClock(), logger.Nop())
	_, err = other.ParseToken(context.Background(), mustToken(t, svc))
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func mustToken(t *testing.T, svc *authService) string {
	t.Helper()
	token, err := svc.createToken("profile-1", models.RoleUser)
	require.NoError(t, err)
	return token.String()
}
