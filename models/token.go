// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role distinguishes regular profiles from administrators in session tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Claims is the JWT claim set issued by the server. The subject is the
// profile id for users and the admin username for administrators.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Token wraps a signed session token together with the identity it carries.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the "sub" claim: a profile id or an admin username.
	Subject string `json:"-"`

	Role      Role      `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// IsAdmin reports whether the token grants administrator access.
func (t Token) IsAdmin() bool {
	return t.Role == RoleAdmin
}
