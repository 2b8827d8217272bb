// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/vera-node/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ProfileIDCtxKey is the key used to store the authenticated profile id
// (or admin username) in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ProfileIDCtxKey, "0190c5e2-...")
var ProfileIDCtxKey = contextKey("profileID")

// RoleCtxKey is the key used to store the session role in the context.
var RoleCtxKey = contextKey("role")

// TraceIDCtxKey carries the request trace id so outbound calls can forward it.
var TraceIDCtxKey = contextKey("traceID")

// GetProfileIDFromContext retrieves the profile identifier from the context.
//
// Returns the id and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetProfileIDFromContext(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(ProfileIDCtxKey).(string)
	return profileID, ok && profileID != ""
}

// GetRoleFromContext retrieves the session role from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// WithSession stores the profile id and role in ctx.
func WithSession(ctx context.Context, subject string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, ProfileIDCtxKey, subject)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetTraceIDFromContext returns the request trace id, or "" outside a request.
func GetTraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(TraceIDCtxKey).(string)
	return id
}
