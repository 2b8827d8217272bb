// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/utils"
	"github.com/MKhiriev/vera-node/models"
)

// secretKeyHeader carries the raw secret key on vote routes. The key is
// never part of the session token.
const secretKeyHeader = "X-Secret-Key"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via AuthService.ParseToken and stores the subject and role in the request
// context (see [utils.WithSession]). Requests without a valid token are
// answered with 401 UNAUTHORIZED.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("subject", token.Subject).Str("role", string(token.Role)).Msg("session accepted")
		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, token.Subject, token.Role)))
	})
}

// requireRole rejects sessions of any other role with 403 FORBIDDEN. It must
// run after auth.
func requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got, ok := utils.GetRoleFromContext(r.Context()); !ok || got != role {
				writeError(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return tokenString, nil
}

// sessionProfileID returns the profile id of the authenticated user.
func sessionProfileID(r *http.Request) (string, error) {
	id, ok := utils.GetProfileIDFromContext(r.Context())
	if !ok {
		return "", ErrMissingProfileInfo
	}
	return id, nil
}
