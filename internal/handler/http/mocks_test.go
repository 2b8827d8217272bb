// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/internal/service"
	"github.com/MKhiriev/vera-node/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	recoverFn    func(ctx context.Context, req models.RecoverRequest) (models.AuthResponse, error)
	profileFn    func(ctx context.Context, profileID string) (models.Profile, error)
	adminLoginFn func(ctx context.Context, req models.AdminLoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Recover(ctx context.Context, req models.RecoverRequest) (models.AuthResponse, error) {
	return m.recoverFn(ctx, req)
}

func (m *mockAuthService) Profile(ctx context.Context, profileID string) (models.Profile, error) {
	return m.profileFn(ctx, profileID)
}

func (m *mockAuthService) AdminLogin(ctx context.Context, req models.AdminLoginRequest) (models.Token, error) {
	return m.adminLoginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return parseTestToken(ctx, tokenString)
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockRumorService struct {
	createFn   func(ctx context.Context, req models.CreateRumorRequest) (models.CreateRumorResponse, error)
	validateFn func(ctx context.Context, req models.ValidateContentRequest) (models.AIValidation, error)
	getFn      func(ctx context.Context, id string) (models.Rumor, error)
	statsFn    func(ctx context.Context, id string) (models.StatsView, error)
	listFn     func(ctx context.Context, filter models.RumorFilter) ([]models.Rumor, error)
}

func (m *mockRumorService) CreateRumor(ctx context.Context, req models.CreateRumorRequest) (models.CreateRumorResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockRumorService) ValidateContent(ctx context.Context, req models.ValidateContentRequest) (models.AIValidation, error) {
	return m.validateFn(ctx, req)
}

func (m *mockRumorService) GetRumor(ctx context.Context, id string) (models.Rumor, error) {
	return m.getFn(ctx, id)
}

func (m *mockRumorService) GetStats(ctx context.Context, id string) (models.StatsView, error) {
	return m.statsFn(ctx, id)
}

func (m *mockRumorService) ListRumors(ctx context.Context, filter models.RumorFilter) ([]models.Rumor, error) {
	return m.listFn(ctx, filter)
}

type mockVoteService struct {
	castFn   func(ctx context.Context, req models.CastVoteRequest) (models.Vote, error)
	statusFn func(ctx context.Context, req models.VoteStatusRequest) (models.VoteStatus, error)
}

func (m *mockVoteService) CastVote(ctx context.Context, req models.CastVoteRequest) (models.Vote, error) {
	return m.castFn(ctx, req)
}

func (m *mockVoteService) VoteStatus(ctx context.Context, req models.VoteStatusRequest) (models.VoteStatus, error) {
	return m.statusFn(ctx, req)
}

type mockUserService struct {
	statsFn  func(ctx context.Context, profileID string) (models.UserStats, error)
	rumorsFn func(ctx context.Context, profileID string) ([]models.Rumor, error)
}

func (m *mockUserService) Stats(ctx context.Context, profileID string) (models.UserStats, error) {
	return m.statsFn(ctx, profileID)
}

func (m *mockUserService) Rumors(ctx context.Context, profileID string) ([]models.Rumor, error) {
	return m.rumorsFn(ctx, profileID)
}

type mockAdminService struct {
	statsFn   func(ctx context.Context) (models.AdminStats, error)
	blockedFn func(ctx context.Context) ([]models.BlockedProfile, error)
	unblockFn func(ctx context.Context, req models.UnblockRequest) (models.Profile, error)
}

func (m *mockAdminService) Stats(ctx context.Context) (models.AdminStats, error) {
	return m.statsFn(ctx)
}

func (m *mockAdminService) BlockedProfiles(ctx context.Context) ([]models.BlockedProfile, error) {
	return m.blockedFn(ctx)
}

func (m *mockAdminService) Unblock(ctx context.Context, req models.UnblockRequest) (models.Profile, error) {
	return m.unblockFn(ctx, req)
}

type mockLedgerService struct {
	listFn   func(ctx context.Context, from int64, limit uint64) ([]models.LedgerBlock, error)
	verifyFn func(ctx context.Context) (models.LedgerReport, error)
}

func (m *mockLedgerService) ListBlocks(ctx context.Context, from int64, limit uint64) ([]models.LedgerBlock, error) {
	return m.listFn(ctx, from, limit)
}

func (m *mockLedgerService) Verify(ctx context.Context) (models.LedgerReport, error) {
	return m.verifyFn(ctx)
}

func (m *mockLedgerService) Export(context.Context, service.BlockSink) (int64, error) {
	return 0, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	userToken    = "user-token"
	adminToken   = "admin-token"
	testProfile  = "0190c5e2-0000-7000-8000-000000000001"
	testRumorID  = "0190c5e2-0000-7000-8000-0000000000aa"
	testKey      = "a3f1c2d4e5b60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
	testUsername = "root"
)

func parseTestToken(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case userToken:
		return models.Token{Subject: testProfile, Role: models.RoleUser}, nil
	case adminToken:
		return models.Token{Subject: testUsername, Role: models.RoleAdmin}, nil
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// newTestServices returns services with no behavior; a test sets the func
// fields it needs. Calling an unset field panics into a 500.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		RumorService:   &mockRumorService{},
		VoteService:    &mockVoteService{},
		UserService:    &mockUserService{},
		AdminService:   &mockAdminService{},
		LedgerService:  &mockLedgerService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(svcs *service.Services) http.Handler {
	return NewHandler(svcs, nil, metrics.New(), time.Second, logger.Nop()).Init()
}

type testRequest struct {
	method string
	path   string
	body   string
	token  string
	key    string
}

func do(t *testing.T, router http.Handler, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.path, body)
	if tr.token != "" {
		req.Header.Set("Authorization", "Bearer "+tr.token)
	}
	if tr.key != "" {
		req.Header.Set(secretKeyHeader, tr.key)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
